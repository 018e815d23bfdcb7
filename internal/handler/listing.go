// Package handler exposes the listing pipeline over HTTP.
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"listmate/internal/logger"
	"listmate/internal/model"
	"listmate/internal/pipeline"
	"listmate/internal/region"
)

// ListingHandler handles listing generation requests.
type ListingHandler struct {
	pipe    *pipeline.Pipeline
	regions *region.Table
	log     *logger.Logger
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(pipe *pipeline.Pipeline, regions *region.Table, log *logger.Logger) *ListingHandler {
	return &ListingHandler{pipe: pipe, regions: regions, log: log}
}

// Generate handles POST /api/v1/listings/generate
func (h *ListingHandler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rec := recordFromRequest(&req)
	h.log.Info("generation request received",
		"request_id", rec.RequestID,
		"listing_type", rec.ListingType,
		"region", rec.Region)

	start := time.Now()
	rec = h.pipe.Run(c.Request.Context(), rec)
	took := time.Since(start).Milliseconds()

	resp := model.GenerateResponse{
		RequestID: rec.RequestID,
		TookMS:    took,
	}

	if rec.State == model.StateFormatted && !rec.HasErrors() {
		resp.Success = true
		resp.Listing = &model.GeneratedOutput{
			Title:            rec.Title,
			Description:      rec.Description,
			PriceBlock:       rec.PriceBlock,
			FormattedListing: rec.FormattedListing,
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp.Errors = rec.Errors

	// Rejected input is the caller's problem; everything past validation
	// failed on our side of the fence.
	status := http.StatusBadGateway
	if rec.State == model.StateFailed {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, resp)
}

// Regions handles GET /api/v1/regions
func (h *ListingHandler) Regions(c *gin.Context) {
	type regionInfo struct {
		Code        string `json:"code"`
		Name        string `json:"name"`
		Currency    string `json:"currency"`
		Symbol      string `json:"symbol"`
		AddressHint string `json:"address_hint"`
	}

	infos := make([]regionInfo, 0, len(h.regions.Codes()))
	for _, code := range h.regions.Codes() {
		cfg := h.regions.Get(code)
		infos = append(infos, regionInfo{
			Code:        cfg.Code,
			Name:        cfg.Name,
			Currency:    cfg.Currency,
			Symbol:      cfg.Symbol,
			AddressHint: cfg.AddressHint,
		})
	}
	c.JSON(http.StatusOK, gin.H{"regions": infos})
}

func recordFromRequest(req *model.GenerateRequest) *model.Record {
	rec := model.NewRecord(req.Address, model.ListingType(req.ListingType), req.Price, req.Region)
	rec.Notes = req.Notes
	rec.HOAFees = req.HOAFees
	rec.PropertyTaxes = req.PropertyTaxes
	rec.CouncilTax = req.CouncilTax
	rec.Rates = req.Rates
	rec.StrataFees = req.StrataFees
	rec.SecurityDeposit = req.SecurityDeposit
	rec.BillingCycle = req.BillingCycle
	rec.LeaseTerm = req.LeaseTerm
	rec.PropertyType = req.PropertyType
	rec.Bedrooms = req.Bedrooms
	rec.Bathrooms = req.Bathrooms
	rec.Sqft = req.Sqft
	return rec
}
