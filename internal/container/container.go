package container

import (
	"fmt"

	"descstats/adapters/export"
	"descstats/app"
	"descstats/internal"
	"descstats/internal/config"
	"descstats/ports"
)

// Container holds all application dependencies and manages their wiring
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	Analysis *app.AnalysisService

	// Exporters keyed by file extension
	Exporters map[string]ports.ReportExporter
}

// New creates a fully wired dependency container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	logger := internal.NewDefaultLogger()

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Analysis: app.NewAnalysisService(cfg.Stats, logger),
		Exporters: map[string]ports.ReportExporter{
			"csv":  export.NewCSVExporter(),
			"xlsx": export.NewExcelExporter(),
		},
	}

	logger.Debug("container initialized with %d exporters", len(c.Exporters))
	return c, nil
}
