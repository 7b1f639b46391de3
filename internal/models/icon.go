package models

// IconTag is a semantic display hint derived from a category name.
// It annotates derived buckets for the rendering layer and never affects totals.
type IconTag string

const (
	IconTithe        IconTag = "tithe"
	IconSales        IconTag = "sales"
	IconRent         IconTag = "rent"
	IconConstruction IconTag = "construction"
	IconUtilities    IconTag = "utilities"
	IconTransport    IconTag = "transport"
	IconSalary       IconTag = "salary"
	IconMaintenance  IconTag = "maintenance"
	IconEquipment    IconTag = "equipment"
	IconPrinting     IconTag = "printing"
	IconConnectivity IconTag = "connectivity"
	IconTelephony    IconTag = "telephony"
	IconMedical      IconTag = "medical"
	IconFood         IconTag = "food"
	IconEvent        IconTag = "event"
	IconOutreach     IconTag = "outreach"
	IconGift         IconTag = "gift"
	IconGeneric      IconTag = "generic"
)
