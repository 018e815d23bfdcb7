// Package pipeline orchestrates listing generation as a linear state
// machine: input check, validation, normalization, enrichment, generation,
// output check, formatting. The record's error slice is the only branching
// signal. The first two stages are hard checkpoints that fail the record;
// everything after them accumulates errors and suppresses output instead.
package pipeline

import (
	"context"

	"listmate/internal/enrich"
	"listmate/internal/format"
	"listmate/internal/guardrail"
	"listmate/internal/jsonx"
	"listmate/internal/llm"
	"listmate/internal/logger"
	"listmate/internal/model"
	"listmate/internal/normalize"
	"listmate/internal/prompt"
	"listmate/internal/region"
	"listmate/internal/validate"
)

// Pipeline wires the stages together. Construct once, run per request.
type Pipeline struct {
	guard     *guardrail.Engine
	enricher  *enrich.Enricher
	generator llm.Generator
	regions   *region.Table
	log       *logger.Logger
}

// New builds a pipeline.
func New(guard *guardrail.Engine, enricher *enrich.Enricher, generator llm.Generator, regions *region.Table, log *logger.Logger) *Pipeline {
	return &Pipeline{
		guard:     guard,
		enricher:  enricher,
		generator: generator,
		regions:   regions,
		log:       log,
	}
}

// Run drives the record through every stage it qualifies for and returns
// it in a terminal or rest state. Run never returns an error: everything
// the caller needs to know is on the record.
func (p *Pipeline) Run(ctx context.Context, rec *model.Record) *model.Record {
	log := p.log.With("request_id", rec.RequestID)

	// Checkpoint one: unsafe input never reaches validation.
	rec.AddErrors(p.guard.CheckInput(rec)...)
	rec.State = model.StateInputChecked
	if rec.HasErrors() {
		log.Warn("input guardrail rejected request", "errors", rec.Errors)
		rec.State = model.StateFailed
		return rec
	}

	// Checkpoint two: malformed input never reaches generation.
	rec.AddErrors(validate.Record(rec)...)
	rec.State = model.StateValidated
	if rec.HasErrors() {
		log.Warn("validation rejected request", "errors", rec.Errors)
		rec.State = model.StateFailed
		return rec
	}

	rec.NormalizedAddress = normalize.Address(rec.Address)
	rec.NormalizedNotes = normalize.Notes(rec.Notes)
	rec.State = model.StateNormalized

	rec.Enrichment = p.enricher.Enrich(ctx, rec)
	rec.State = model.StateEnriched
	log.Debug("enrichment complete",
		"zip", rec.Enrichment.ZipCode,
		"neighborhood", rec.Enrichment.Neighborhood,
		"landmarks", len(rec.Enrichment.Landmarks))

	regionCfg := p.regions.Get(rec.Region)

	if !p.generate(ctx, rec, regionCfg, log) {
		return rec
	}
	rec.State = model.StateGenerated

	outputErrs := p.guard.CheckOutput(rec.Parsed, rec)
	rec.State = model.StateOutputChecked
	if len(outputErrs) > 0 {
		// Full suppression: a listing that fails any output check is
		// withheld entirely rather than partially delivered.
		rec.AddErrors(outputErrs...)
		log.Warn("output guardrail suppressed listing", "errors", outputErrs)
		return rec
	}

	format.Apply(rec, regionCfg)
	rec.State = model.StateFormatted
	log.Info("listing generated",
		"listing_type", rec.ListingType,
		"region", regionCfg.Code,
		"title_len", len(rec.Title))
	return rec
}

// generate runs the model call and parses its reply onto the record. A
// false return means the remaining stages have nothing to work with.
func (p *Pipeline) generate(ctx context.Context, rec *model.Record, regionCfg region.Config, log *logger.Logger) bool {
	if p.generator == nil || !p.generator.IsEnabled() {
		rec.AddErrors("listing generation is unavailable: model API is not configured")
		return false
	}

	userPrompt := prompt.Build(rec, regionCfg)
	raw, err := p.generator.Generate(ctx, prompt.SystemPrompt, userPrompt)
	if err != nil {
		log.Error("model call failed", "error", err)
		rec.AddErrors("listing generation failed: " + err.Error())
		return false
	}
	rec.RawModelOutput = raw

	var parsed model.ParsedListing
	if err := jsonx.Parse(raw, &parsed); err != nil {
		log.Error("model output unparseable", "error", err)
		rec.AddErrors("listing generation produced unusable output: " + err.Error())
		return false
	}
	rec.Parsed = &parsed
	return true
}
