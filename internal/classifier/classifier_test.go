package classifier

import (
	"testing"

	"unitfin/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     models.IconTag
	}{
		{"tithe", "Tithe", models.IconTithe},
		{"offering case insensitive", "sunday OFFERING", models.IconTithe},
		{"sales", "Bookstore Sales", models.IconSales},
		{"rent", "Hall Rent", models.IconRent},
		{"construction", "Building Project", models.IconConstruction},
		{"utilities", "Generator Fuel", models.IconUtilities},
		{"transport", "Bus Transport", models.IconTransport},
		{"salary", "Pastor Salary", models.IconSalary},
		{"maintenance", "AC Repair", models.IconMaintenance},
		{"equipment", "Sound Equipment", models.IconEquipment},
		{"printing", "Banner Printing", models.IconPrinting},
		{"connectivity", "Internet Data", models.IconConnectivity},
		{"telephony", "Airtime Topup", models.IconTelephony},
		{"medical", "Welfare Support", models.IconMedical},
		{"food", "Event Catering", models.IconFood},
		{"event", "Youth Conference", models.IconEvent},
		{"outreach", "Evangelism Outreach", models.IconOutreach},
		{"gift", "Thanksgiving Donation", models.IconGift},
		{"unknown falls back", "Miscellaneous", models.IconGeneric},
		{"empty falls back", "", models.IconGeneric},
		{"whitespace falls back", "   ", models.IconGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.category))
		})
	}
}

func TestClassify_FirstRuleWins(t *testing.T) {
	// "Tithe Transport" matches both the tithe and transport vocabularies;
	// the rule order makes tithe win.
	assert.Equal(t, models.IconTithe, Classify("Tithe Transport"))

	// "Event Catering" matches food before event because the food rule sits
	// higher in the table.
	assert.Equal(t, models.IconFood, Classify("Event Catering"))
}
