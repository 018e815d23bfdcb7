// Package validate checks listing input for structural correctness. It is
// concerned with well-formedness, not safety; safety lives in guardrail.
package validate

import (
	"fmt"
	"strings"
	"unicode"

	"listmate/internal/model"
)

const (
	MinAddressLen = 5
	MinPrice      = 0.01
	MaxPrice      = 999_999_999.99
	MaxBedrooms   = 20
	MaxBathrooms  = 20
)

// Record returns every validation error found on the record, in a stable
// order. An empty slice means the input is structurally sound.
func Record(rec *model.Record) []string {
	var errs []string

	errs = append(errs, checkAddress(rec.Address)...)

	if !rec.ListingType.Valid() {
		errs = append(errs, fmt.Sprintf("listing_type must be %q or %q", model.ListingTypeSale, model.ListingTypeRent))
	}

	if rec.Price < MinPrice {
		errs = append(errs, fmt.Sprintf("price must be at least %.2f", MinPrice))
	} else if rec.Price > MaxPrice {
		errs = append(errs, fmt.Sprintf("price must not exceed %.2f", MaxPrice))
	}

	if rec.Notes != "" && strings.TrimSpace(rec.Notes) == "" {
		errs = append(errs, "notes must not be blank when provided")
	}

	errs = append(errs, checkOptionalFees(rec)...)
	errs = append(errs, checkDescriptiveFields(rec)...)

	return errs
}

func checkAddress(address string) []string {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return []string{"address is required"}
	}
	var errs []string
	if len(trimmed) < MinAddressLen {
		errs = append(errs, fmt.Sprintf("address must be at least %d characters", MinAddressLen))
	}
	if !containsAlphanumeric(trimmed) {
		errs = append(errs, "address must contain letters or digits")
	}
	return errs
}

func checkOptionalFees(rec *model.Record) []string {
	fees := []struct {
		name  string
		value *float64
	}{
		{"hoa_fees", rec.HOAFees},
		{"property_taxes", rec.PropertyTaxes},
		{"council_tax", rec.CouncilTax},
		{"rates", rec.Rates},
		{"strata_fees", rec.StrataFees},
		{"security_deposit", rec.SecurityDeposit},
	}
	var errs []string
	for _, f := range fees {
		if f.value != nil && *f.value < 0 {
			errs = append(errs, f.name+" must not be negative")
		}
	}
	terms := []struct {
		name  string
		value *string
	}{
		{"billing_cycle", rec.BillingCycle},
		{"lease_term", rec.LeaseTerm},
	}
	for _, f := range terms {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			errs = append(errs, f.name+" must not be blank when provided")
		}
	}
	return errs
}

func checkDescriptiveFields(rec *model.Record) []string {
	var errs []string
	if rec.Bedrooms != nil && (*rec.Bedrooms < 0 || *rec.Bedrooms > MaxBedrooms) {
		errs = append(errs, fmt.Sprintf("bedrooms must be between 0 and %d", MaxBedrooms))
	}
	if rec.Bathrooms != nil && (*rec.Bathrooms < 0 || *rec.Bathrooms > MaxBathrooms) {
		errs = append(errs, fmt.Sprintf("bathrooms must be between 0 and %d", MaxBathrooms))
	}
	if rec.Sqft != nil && *rec.Sqft <= 0 {
		errs = append(errs, "sqft must be positive")
	}
	if rec.PropertyType != nil && strings.TrimSpace(*rec.PropertyType) == "" {
		errs = append(errs, "property_type must not be blank when provided")
	}
	return errs
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
