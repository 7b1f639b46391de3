// Package classifier maps category names to semantic icon tags using keyword
// pattern matching. The mapping is a display hint only and never affects
// totals.
package classifier

import (
	"strings"

	"unitfin/internal/models"
)

// rule pairs a set of keywords with the tag assigned on first match.
type rule struct {
	keywords []string
	tag      models.IconTag
}

// rules is evaluated top to bottom; the first rule with a matching keyword
// wins, so more specific vocabulary sits above the generic entries.
var rules = []rule{
	{[]string{"TITHE", "OFFERING", "FIRSTFRUIT", "SEED"}, models.IconTithe},
	{[]string{"SALE", "MERCHANDISE", "BOOKSTORE", "SOUVENIR"}, models.IconSales},
	{[]string{"RENT", "FACILITY", "HALL", "VENUE"}, models.IconRent},
	{[]string{"CONSTRUCTION", "BUILDING", "PROJECT", "RENOVATION"}, models.IconConstruction},
	{[]string{"UTILIT", "ELECTRIC", "POWER", "WATER", "GENERATOR", "FUEL", "DIESEL"}, models.IconUtilities},
	{[]string{"TRANSPORT", "TRAVEL", "BUS", "LOGISTICS"}, models.IconTransport},
	{[]string{"SALAR", "PAYROLL", "WAGE", "STIPEND", "HONORARIUM"}, models.IconSalary},
	{[]string{"MAINTENANCE", "REPAIR", "SERVICING"}, models.IconMaintenance},
	{[]string{"EQUIPMENT", "INSTRUMENT", "SOUND", "SPEAKER", "PROJECTOR"}, models.IconEquipment},
	{[]string{"PRINT", "STATIONER", "PUBLICATION", "BANNER", "FLYER"}, models.IconPrinting},
	{[]string{"INTERNET", "DATA", "WIFI", "SUBSCRIPTION"}, models.IconConnectivity},
	{[]string{"PHONE", "AIRTIME", "CALL", "TELEPHON"}, models.IconTelephony},
	{[]string{"MEDICAL", "HEALTH", "HOSPITAL", "WELFARE"}, models.IconMedical},
	{[]string{"FOOD", "CATERING", "REFRESHMENT", "FEEDING"}, models.IconFood},
	{[]string{"EVENT", "CONFERENCE", "CONVENTION", "PROGRAM", "CRUSADE"}, models.IconEvent},
	{[]string{"OUTREACH", "MISSION", "EVANGELISM", "CHARITY"}, models.IconOutreach},
	{[]string{"GIFT", "DONATION", "THANKSGIVING", "PLEDGE"}, models.IconGift},
}

// Classify maps a category name to its icon tag. Matching is case-insensitive
// substring matching; unknown names fall back to the generic tag.
func Classify(categoryName string) models.IconTag {
	name := strings.ToUpper(strings.TrimSpace(categoryName))
	if name == "" {
		return models.IconGeneric
	}

	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(name, keyword) {
				return r.tag
			}
		}
	}

	return models.IconGeneric
}
