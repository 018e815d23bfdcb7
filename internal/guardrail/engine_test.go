package guardrail

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listmate/internal/model"
	"listmate/internal/region"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New("", region.MustLoad())
	require.NoError(t, err)
	return e
}

func saleRecord(address string, price float64) *model.Record {
	return model.NewRecord(address, model.ListingTypeSale, price, "US")
}

func TestCheckInputClean(t *testing.T) {
	e := newTestEngine(t)

	rec := saleRecord("123 Main Street, Springfield, IL 62704", 350000)
	rec.Notes = "Renovated kitchen, two-car garage"

	assert.Empty(t, e.CheckInput(rec))
}

func TestCheckInputLengthCeilings(t *testing.T) {
	e := newTestEngine(t)

	rec := saleRecord(strings.Repeat("a", 501), 100000)
	errs := e.CheckInput(rec)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "address exceeds maximum length of 500")

	rec = saleRecord("123 Main Street, Springfield", 100000)
	rec.Notes = strings.Repeat("n", 2001)
	errs = e.CheckInput(rec)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "notes exceed maximum length of 2000")
}

func TestCheckInputInjection(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name    string
		address string
		notes   string
		wantIn  string
	}{
		{"sql in address", "123 Main St; DROP TABLE listings --", "", "address"},
		{"script tag in notes", "123 Main Street, Springfield", "<script>alert(1)</script>", "notes"},
		{"sql tautology", "123 Main St' OR 1=1", "", "address"},
		{"shell chain in notes", "123 Main Street, Springfield", "nice && rm -rf /", "notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := saleRecord(tt.address, 100000)
			rec.Notes = tt.notes
			errs := e.CheckInput(rec)
			require.NotEmpty(t, errs)
			found := false
			for _, msg := range errs {
				if strings.Contains(msg, "injection pattern detected in "+tt.wantIn) {
					found = true
				}
			}
			assert.True(t, found, "errors: %v", errs)
		})
	}
}

func TestCheckInputInappropriate(t *testing.T) {
	e := newTestEngine(t)

	rec := saleRecord("123 Main Street, Springfield", 100000)
	rec.Notes = "this is a scam listing"
	errs := e.CheckInput(rec)
	require.Len(t, errs, 1)
	assert.Equal(t, "inappropriate content detected in input: scam", errs[0])
}

func TestCheckInputTopicGatedOnRequiredFields(t *testing.T) {
	e := newTestEngine(t)

	// Off-topic input with required fields present fails the topic check.
	rec := saleRecord("quantum flux capacitor blueprints", 100000)
	errs := e.CheckInput(rec)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "does not appear to be related to a property")

	// Same text without a price skips the topic check entirely.
	rec = saleRecord("quantum flux capacitor blueprints", 0)
	assert.Empty(t, e.CheckInput(rec))

	// An invalid listing type skips it too; validation owns that error.
	rec = model.NewRecord("quantum flux capacitor blueprints", "", 100000, "US")
	assert.Empty(t, e.CheckInput(rec))
}

func TestCheckInputAddressLikeHeuristic(t *testing.T) {
	e := newTestEngine(t)

	// No domain keyword, but commas and multiple words read like an address.
	rec := saleRecord("14 Rue de Rivoli, Paris", 900000)
	assert.Empty(t, e.CheckInput(rec))
}

func validOutput() *model.ParsedListing {
	return &model.ParsedListing{
		Title:       "Charming 3-Bedroom Home in Springfield",
		Description: "This beautifully maintained home offers a renovated kitchen, hardwood floors, and a spacious backyard close to parks and schools.",
		PriceBlock:  "Asking Price: $350,000",
	}
}

func TestCheckOutputClean(t *testing.T) {
	e := newTestEngine(t)
	rec := saleRecord("123 Main Street, Springfield", 350000)

	assert.Empty(t, e.CheckOutput(validOutput(), rec))
}

func TestCheckOutputStructureShortCircuits(t *testing.T) {
	e := newTestEngine(t)
	rec := saleRecord("123 Main Street, Springfield", 350000)

	errs := e.CheckOutput(nil, rec)
	assert.Equal(t, []string{"generated output is missing"}, errs)

	out := validOutput()
	out.Title = ""
	out.Description = "   "
	errs = e.CheckOutput(out, rec)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "missing a title")
	assert.Contains(t, errs[1], "missing a description")
}

func TestCheckOutputLengths(t *testing.T) {
	e := newTestEngine(t)
	rec := saleRecord("123 Main Street, Springfield", 350000)

	out := validOutput()
	out.Title = "Spacious Home " + strings.Repeat("x", 200)
	errs := e.CheckOutput(out, rec)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "title exceeds maximum length of 200")
}

func TestCheckOutputPriceInDescription(t *testing.T) {
	e := newTestEngine(t)
	rec := saleRecord("123 Main Street, Springfield", 350000)

	tests := []string{
		"A lovely home for $350,000 with a big yard.",
		"Just 350000 dollars for this gem near the park.",
		"A lovely home, priced at 350,000, near schools.",
		"Yours for 1500 per month in this quiet bedroom community.",
	}
	for _, desc := range tests {
		out := validOutput()
		out.Description = desc
		errs := e.CheckOutput(out, rec)
		require.NotEmpty(t, errs, "description: %q", desc)
		found := false
		for _, msg := range errs {
			if strings.Contains(msg, "must not mention the price") {
				found = true
			}
		}
		assert.True(t, found, "description: %q, errors: %v", desc, errs)
	}
}

func TestCheckOutputPriceCompliance(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name        string
		listingType model.ListingType
		asking      float64
		priceBlock  string
		wantErr     bool
	}{
		{"sale exact", model.ListingTypeSale, 350000, "Asking Price: $350,000", false},
		{"sale within 10%", model.ListingTypeSale, 350000, "Asking Price: $379,000", false},
		{"sale beyond 10%", model.ListingTypeSale, 350000, "Asking Price: $400,000", true},
		{"rent within 20%", model.ListingTypeRent, 2000, "Monthly Rent: $2,300", false},
		{"rent beyond 20%", model.ListingTypeRent, 2000, "Monthly Rent: $2,500", true},
		{"bare number exact", model.ListingTypeSale, 350000, "Asking price: 350,000 USD", false},
		{"bare number beyond 10%", model.ListingTypeSale, 350000, "Asking price: 700,000 USD", true},
		{"no price stated", model.ListingTypeSale, 350000, "Contact us for pricing", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := model.NewRecord("123 Main Street, Springfield", tt.listingType, tt.asking, "US")
			out := validOutput()
			out.PriceBlock = tt.priceBlock
			errs := e.CheckOutput(out, rec)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestCheckOutputRegionCurrency(t *testing.T) {
	e := newTestEngine(t)
	rec := model.NewRecord("10 Downing Street, London", model.ListingTypeSale, 500000, "UK")

	out := validOutput()
	out.PriceBlock = "Guide Price: £500,000"
	assert.Empty(t, e.CheckOutput(out, rec))

	// A pound amount in the description trips the price mention check.
	out.Description = "An elegant terrace home worth every bit of £500,000, near excellent schools."
	errs := e.CheckOutput(out, rec)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "must not mention the price")
}

func TestCheckOutputForeignCurrencyInDescription(t *testing.T) {
	e := newTestEngine(t)
	rec := model.NewRecord("10 Downing Street, London", model.ListingTypeSale, 500000, "UK")

	// A dollar amount is still a price even on a pound-denominated listing.
	out := validOutput()
	out.PriceBlock = "Guide Price: £500,000"
	out.Description = "This elegant terrace home would fetch $650,000 across the pond, near excellent schools."
	errs := e.CheckOutput(out, rec)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "must not mention the price")
}

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		text   string
		symbol string
		want   float64
		ok     bool
	}{
		{"Asking Price: $350,000", "$", 350000, true},
		{"$1,250.50 per month", "$", 1250.50, true},
		{"£425,000 guide price", "£", 425000, true},
		{"Asking price: 350,000 USD", "$", 350000, true},
		{"Rent is 1,800 per month", "$", 1800, true},
		{"no numbers here", "$", 0, false},
	}
	for _, tt := range tests {
		got, ok := extractAmount(tt.text, tt.symbol)
		assert.Equal(t, tt.ok, ok, tt.text)
		if ok {
			assert.InDelta(t, tt.want, got, 0.001, tt.text)
		}
	}
}

func TestKeywordClassifier(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	c := NewKeywordClassifier(rules)

	assert.True(t, c.PropertyRelated("cozy apartment with balcony"))
	assert.True(t, c.PropertyRelated("42 Elm Street Springfield"))
	assert.False(t, c.PropertyRelated("stock market analysis"))
	assert.False(t, c.PropertyRelated("hello"))

	assert.Equal(t, []string{"fraud"}, c.Inappropriate("this deal is FRAUD"))
	assert.Empty(t, c.Inappropriate("a pleasant family home"))
}
