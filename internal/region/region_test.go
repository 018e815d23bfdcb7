package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listmate/internal/model"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"AU", "CA", "UK", "US"}, table.Codes())
}

func TestGetFallsBackToDefault(t *testing.T) {
	table := MustLoad()

	cfg := table.Get("DE")
	assert.Equal(t, "US", cfg.Code)

	cfg = table.Get("")
	assert.Equal(t, "US", cfg.Code)

	cfg = table.Get("UK")
	assert.Equal(t, "UK", cfg.Code)
}

func TestFieldApplicability(t *testing.T) {
	table := MustLoad()

	tests := []struct {
		region      string
		listingType model.ListingType
		want        []string
	}{
		{"US", model.ListingTypeSale, []string{"hoa_fees", "property_taxes"}},
		{"US", model.ListingTypeRent, []string{"security_deposit", "billing_cycle", "lease_term"}},
		{"CA", model.ListingTypeSale, []string{"hoa_fees", "property_taxes", "strata_fees"}},
		{"UK", model.ListingTypeSale, []string{"hoa_fees", "council_tax"}},
		{"UK", model.ListingTypeRent, []string{"council_tax", "security_deposit", "billing_cycle", "lease_term"}},
		{"AU", model.ListingTypeSale, []string{"rates", "strata_fees"}},
		{"AU", model.ListingTypeRent, []string{"security_deposit", "billing_cycle", "lease_term"}},
	}
	for _, tt := range tests {
		got := table.Get(tt.region).FieldsFor(tt.listingType)
		assert.Equal(t, tt.want, got, "%s %s", tt.region, tt.listingType)
	}
}

func TestRegionLabels(t *testing.T) {
	table := MustLoad()

	assert.Equal(t, "Condo/Strata Fees", table.Get("CA").Fields["hoa_fees"].Label)
	assert.Equal(t, "Service Charge", table.Get("UK").Fields["hoa_fees"].Label)
	assert.Equal(t, "Council Rates", table.Get("AU").Fields["rates"].Label)
}

func TestCurrency(t *testing.T) {
	table := MustLoad()

	assert.Equal(t, "£", table.Get("UK").Symbol)
	assert.Equal(t, "GBP", table.Get("UK").Currency)
	assert.Equal(t, "$", table.Get("AU").Symbol)
	assert.Equal(t, "AUD", table.Get("AU").Currency)
}

func TestCouncilTaxAppliesToBoth(t *testing.T) {
	table := MustLoad()

	f := table.Get("UK").Fields["council_tax"]
	assert.True(t, f.AppliesTo(model.ListingTypeSale))
	assert.True(t, f.AppliesTo(model.ListingTypeRent))
}
