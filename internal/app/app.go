// Package app wires configuration, clients, and the pipeline into a
// runnable application. Both the server binary and the CLI build on it.
package app

import (
	"fmt"

	"listmate/internal/config"
	"listmate/internal/enrich"
	"listmate/internal/guardrail"
	"listmate/internal/handler"
	"listmate/internal/llm"
	"listmate/internal/logger"
	"listmate/internal/pipeline"
	"listmate/internal/region"
	"listmate/internal/search"

	"github.com/gin-gonic/gin"
)

// App holds the assembled application.
type App struct {
	Cfg      *config.Config
	Log      *logger.Logger
	Regions  *region.Table
	Pipeline *pipeline.Pipeline
}

// New loads configuration and builds every component.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	regions, err := region.Load("")
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}

	guard, err := guardrail.New(cfg.Guardrail.RulesPath, regions)
	if err != nil {
		return nil, fmt.Errorf("init guardrails: %w", err)
	}

	searcher := search.NewTavilyClient(&cfg.Search)
	if !searcher.IsEnabled() {
		log.Warn("search API not configured, enrichment will be skipped")
	}
	enricher := enrich.New(searcher, log, cfg.Enrichment.Strategy)

	generator := llm.NewClient(&cfg.Model)
	if !generator.IsEnabled() {
		log.Warn("model API not configured, generation requests will fail")
	}

	return &App{
		Cfg:      cfg,
		Log:      log,
		Regions:  regions,
		Pipeline: pipeline.New(guard, enricher, generator, regions, log),
	}, nil
}

// Router builds the HTTP router for the app.
func (a *App) Router(version handler.VersionInfo) *gin.Engine {
	gin.SetMode(a.Cfg.Server.GinMode)
	listings := handler.NewListingHandler(a.Pipeline, a.Regions, a.Log)
	return handler.NewRouter(&a.Cfg.Server, listings, version)
}

// Addr returns the listen address from configuration.
func (a *App) Addr() string {
	return fmt.Sprintf("%s:%d", a.Cfg.Server.Host, a.Cfg.Server.Port)
}
