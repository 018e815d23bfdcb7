package model

// GenerateRequest is the wire shape of a listing generation request.
type GenerateRequest struct {
	Address     string  `json:"address" binding:"required"`
	ListingType string  `json:"listing_type" binding:"required"`
	Price       float64 `json:"price"`
	Region      string  `json:"region,omitempty"`
	Notes       string  `json:"notes,omitempty"`

	HOAFees         *float64 `json:"hoa_fees,omitempty"`
	PropertyTaxes   *float64 `json:"property_taxes,omitempty"`
	CouncilTax      *float64 `json:"council_tax,omitempty"`
	Rates           *float64 `json:"rates,omitempty"`
	StrataFees      *float64 `json:"strata_fees,omitempty"`
	SecurityDeposit *float64 `json:"security_deposit,omitempty"`
	BillingCycle    *string  `json:"billing_cycle,omitempty"`
	LeaseTerm       *string  `json:"lease_term,omitempty"`

	PropertyType *string  `json:"property_type,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	Sqft         *int     `json:"sqft,omitempty"`
}

// GenerateResponse is the wire shape of a listing generation result.
// Either Listing is set and Errors is empty, or Listing is nil and Errors
// explains why.
type GenerateResponse struct {
	Success   bool             `json:"success"`
	RequestID string           `json:"request_id"`
	Listing   *GeneratedOutput `json:"listing,omitempty"`
	Errors    []string         `json:"errors,omitempty"`
	TookMS    int64            `json:"took_ms"`
}

// GeneratedOutput is the user-facing listing content.
type GeneratedOutput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	PriceBlock       string `json:"price_block"`
	FormattedListing string `json:"formatted_listing"`
}
