package model

import "github.com/google/uuid"

// ListingType is the kind of listing being generated.
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

// Valid reports whether the listing type is one of the supported values.
func (t ListingType) Valid() bool {
	return t == ListingTypeSale || t == ListingTypeRent
}

// State tracks where a record is in the pipeline.
type State string

const (
	StateCreated       State = "created"
	StateInputChecked  State = "input_checked"
	StateValidated     State = "validated"
	StateNormalized    State = "normalized"
	StateEnriched      State = "enriched"
	StateGenerated     State = "generated"
	StateOutputChecked State = "output_checked"
	StateFormatted     State = "formatted"
	StateFailed        State = "failed"
)

// Terminal reports whether the state ends the pipeline.
func (s State) Terminal() bool {
	return s == StateFormatted || s == StateFailed
}

// Record is the single state object threaded through every pipeline stage.
// Stages extend it incrementally; none roll back partial writes. Optional
// fields are pointers so that "absent" and "explicitly zero" stay distinct.
type Record struct {
	RequestID string `json:"request_id"`

	// Required input
	Address     string      `json:"address"`
	ListingType ListingType `json:"listing_type"`
	Price       float64     `json:"price"`
	Region      string      `json:"region"`

	// Optional input
	Notes string `json:"notes,omitempty"`

	// Region-specific optional input, applicability gated by region x listing type
	HOAFees         *float64 `json:"hoa_fees,omitempty"`
	PropertyTaxes   *float64 `json:"property_taxes,omitempty"`
	CouncilTax      *float64 `json:"council_tax,omitempty"`
	Rates           *float64 `json:"rates,omitempty"`
	StrataFees      *float64 `json:"strata_fees,omitempty"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty"`
	BillingCycle    *string  `json:"billing_cycle,omitempty"`
	LeaseTerm       *string  `json:"lease_term,omitempty"`

	// Optional descriptive input
	PropertyType *string  `json:"property_type,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	Sqft         *int     `json:"sqft,omitempty"`

	// Set by the normalization stage
	NormalizedAddress string `json:"normalized_address,omitempty"`
	NormalizedNotes   string `json:"normalized_notes,omitempty"`

	// Set by the enrichment stage (best effort, may stay empty)
	Enrichment *Enrichment `json:"enrichment,omitempty"`

	// Set by the generation stage
	RawModelOutput string         `json:"raw_model_output,omitempty"`
	Parsed         *ParsedListing `json:"parsed,omitempty"`

	// Set by the formatting stage
	Title            string `json:"title,omitempty"`
	Description      string `json:"description,omitempty"`
	PriceBlock       string `json:"price_block,omitempty"`
	FormattedListing string `json:"formatted_listing,omitempty"`

	// Append-only; non-emptiness is the pipeline's sole branching signal.
	Errors []string `json:"errors"`

	State State `json:"state"`
}

// NewRecord builds a record in the Created state with a fresh request ID.
// Region defaults to US when unset.
func NewRecord(address string, listingType ListingType, price float64, region string) *Record {
	if region == "" {
		region = "US"
	}
	return &Record{
		RequestID:   uuid.NewString(),
		Address:     address,
		ListingType: listingType,
		Price:       price,
		Region:      region,
		Errors:      []string{},
		State:       StateCreated,
	}
}

// AddErrors appends error messages. Errors are never cleared or overwritten.
func (r *Record) AddErrors(errs ...string) {
	r.Errors = append(r.Errors, errs...)
}

// HasErrors reports whether any stage has recorded an error so far.
func (r *Record) HasErrors() bool {
	return len(r.Errors) > 0
}

// ParsedListing is the structured reply expected from the generation model.
type ParsedListing struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceBlock  string `json:"price_block"`
}

// Enrichment holds best-effort location context derived from web search.
// KeyAmenities always carries the schools and transportation keys, even when
// extraction found nothing; presence of a key does not imply a non-empty list.
type Enrichment struct {
	ZipCode      string              `json:"zip_code,omitempty"`
	Neighborhood string              `json:"neighborhood,omitempty"`
	Landmarks    []string            `json:"landmarks,omitempty"`
	KeyAmenities map[string][]string `json:"key_amenities"`
}

// Amenity category names used as KeyAmenities keys.
const (
	AmenitySchools        = "schools"
	AmenityTransportation = "transportation"
	AmenityParks          = "parks"
	AmenityShopping       = "shopping"
)
