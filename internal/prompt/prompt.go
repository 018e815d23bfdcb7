// Package prompt builds the generation prompt from a fully enriched
// record. Output is deterministic for a given record so that prompts are
// reproducible and cacheable.
package prompt

import (
	"fmt"
	"strings"

	"listmate/internal/model"
	"listmate/internal/region"
)

// SystemPrompt frames the model as a listing copywriter and pins the
// output contract.
const SystemPrompt = `You are an expert real estate copywriter. You write accurate, engaging property listings from structured property information.

Rules you always follow:
- Use only the details provided. Never invent features, measurements, or locations.
- Never mention the price anywhere except the price block.
- Respond ONLY with valid JSON in the exact format requested.`

// amenityOrder fixes the order amenity categories appear in the prompt.
var amenityOrder = []string{
	model.AmenitySchools,
	model.AmenityTransportation,
	model.AmenityParks,
	model.AmenityShopping,
}

var amenityHeadings = map[string]string{
	model.AmenitySchools:        "Schools",
	model.AmenityTransportation: "Transportation",
	model.AmenityParks:          "Parks",
	model.AmenityShopping:       "Shopping",
}

// Build renders the user prompt for the record. The record is expected to
// be normalized and enriched; Build falls back to raw fields when it is
// not.
func Build(rec *model.Record, regionCfg region.Config) string {
	var b strings.Builder

	address := rec.NormalizedAddress
	if address == "" {
		address = rec.Address
	}
	notes := rec.NormalizedNotes
	if notes == "" {
		notes = rec.Notes
	}

	b.WriteString("Generate a property listing for the following property.\n\n")

	b.WriteString("=== PROPERTY INFORMATION ===\n")
	fmt.Fprintf(&b, "Address: %s\n", address)
	fmt.Fprintf(&b, "Listing Type: %s\n", strings.ToUpper(string(rec.ListingType)))
	fmt.Fprintf(&b, "Asking Price: %s%s (%s)\n", regionCfg.Symbol, formatAmount(rec.Price), regionCfg.Currency)
	writeRegionFields(&b, rec, regionCfg)
	writeDescriptiveFields(&b, rec)

	if notes != "" {
		b.WriteString("\n=== PROPERTY FEATURES ===\n")
		b.WriteString(notes)
		b.WriteString("\n")
	}

	writeLocation(&b, rec.Enrichment)
	writeLandmarks(&b, rec.Enrichment)
	writeAmenities(&b, rec.Enrichment)

	b.WriteString("\n=== INSTRUCTIONS ===\n")
	b.WriteString("Write the following three sections:\n")
	b.WriteString("1. title: a compelling listing headline, at most 200 characters.\n")
	b.WriteString("2. description: an engaging description of the property and its surroundings, at most 2000 characters. Do not state the price.\n")
	priceStatement := fmt.Sprintf("%s%s", regionCfg.Symbol, formatAmount(rec.Price))
	if rec.ListingType == model.ListingTypeRent {
		priceStatement += " per " + billingPeriod(rec.BillingCycle)
	}
	fmt.Fprintf(&b, "3. price_block: a concise pricing statement of at most 100 characters that states the asking price of %s.\n", priceStatement)

	b.WriteString("\n=== IMPORTANT GUIDELINES ===\n")
	b.WriteString("- Use only the information provided above. Do not invent details.\n")
	b.WriteString("- Do not mention the price in the title or description.\n")
	b.WriteString("- Keep the tone professional and factual.\n")

	b.WriteString("\n=== OUTPUT FORMAT ===\n")
	b.WriteString(`Respond with JSON in exactly this shape: {"title": "...", "description": "...", "price_block": "..."}`)
	b.WriteString("\n")

	return b.String()
}

// billingPeriod maps a billing cycle to the period word used in the
// price instruction. Rent prices default to monthly.
func billingPeriod(cycle *string) string {
	if cycle == nil {
		return "month"
	}
	switch strings.ToLower(strings.TrimSpace(*cycle)) {
	case "weekly", "week":
		return "week"
	case "yearly", "annually", "annual", "year":
		return "year"
	default:
		return "month"
	}
}

func writeRegionFields(b *strings.Builder, rec *model.Record, regionCfg region.Config) {
	for _, key := range regionCfg.FieldsFor(rec.ListingType) {
		field := regionCfg.Fields[key]
		switch key {
		case "billing_cycle":
			if rec.BillingCycle != nil {
				fmt.Fprintf(b, "%s: %s\n", field.Label, *rec.BillingCycle)
			}
		case "lease_term":
			if rec.LeaseTerm != nil {
				fmt.Fprintf(b, "%s: %s\n", field.Label, *rec.LeaseTerm)
			}
		default:
			if value := numericField(rec, key); value != nil {
				line := fmt.Sprintf("%s: %s%s", field.Label, regionCfg.Symbol, formatAmount(*value))
				if field.Unit != "" {
					line += fmt.Sprintf(" (%s)", field.Unit)
				}
				b.WriteString(line + "\n")
			}
		}
	}
}

func numericField(rec *model.Record, key string) *float64 {
	switch key {
	case "hoa_fees":
		return rec.HOAFees
	case "property_taxes":
		return rec.PropertyTaxes
	case "council_tax":
		return rec.CouncilTax
	case "rates":
		return rec.Rates
	case "strata_fees":
		return rec.StrataFees
	case "security_deposit":
		return rec.SecurityDeposit
	}
	return nil
}

func writeDescriptiveFields(b *strings.Builder, rec *model.Record) {
	if rec.PropertyType != nil {
		fmt.Fprintf(b, "Property Type: %s\n", *rec.PropertyType)
	}
	if rec.Bedrooms != nil {
		fmt.Fprintf(b, "Bedrooms: %d\n", *rec.Bedrooms)
	}
	if rec.Bathrooms != nil {
		fmt.Fprintf(b, "Bathrooms: %g\n", *rec.Bathrooms)
	}
	if rec.Sqft != nil {
		fmt.Fprintf(b, "Square Footage: %d sqft\n", *rec.Sqft)
	}
}

func writeLocation(b *strings.Builder, enrichment *model.Enrichment) {
	if enrichment == nil || (enrichment.ZipCode == "" && enrichment.Neighborhood == "") {
		return
	}
	b.WriteString("\n=== LOCATION & NEIGHBORHOOD ===\n")
	if enrichment.ZipCode != "" {
		fmt.Fprintf(b, "Postal Code: %s\n", enrichment.ZipCode)
	}
	if enrichment.Neighborhood != "" {
		fmt.Fprintf(b, "Neighborhood: %s\n", enrichment.Neighborhood)
	}
}

func writeLandmarks(b *strings.Builder, enrichment *model.Enrichment) {
	if enrichment == nil || len(enrichment.Landmarks) == 0 {
		return
	}
	b.WriteString("\n=== NEARBY LANDMARKS ===\n")
	for _, landmark := range enrichment.Landmarks {
		fmt.Fprintf(b, "- %s\n", landmark)
	}
}

func writeAmenities(b *strings.Builder, enrichment *model.Enrichment) {
	if enrichment == nil {
		return
	}
	var lines []string
	for _, category := range amenityOrder {
		names := enrichment.KeyAmenities[category]
		if len(names) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", amenityHeadings[category], strings.Join(names, ", ")))
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString("\n=== KEY AMENITIES ===\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
}

// formatAmount renders a money amount with thousands separators and two
// decimals: 350000 becomes "350,000.00".
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, ",") + "." + decPart
	if negative {
		out = "-" + out
	}
	return out
}
