package report

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"polyping/internal/models"
)

// Generator renders the end-of-run summary from the collected results
type Generator struct {
	store  models.ResultStore
	logger zerolog.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(store models.ResultStore, logger zerolog.Logger) *Generator {
	return &Generator{store: store, logger: logger}
}

// GenerateTextReport writes the summary table for endpoints, in the given order
func (g *Generator) GenerateTextReport(w io.Writer, endpoints []models.Endpoint) error {
	rs, err := g.store.GetResultSet(endpoints)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}
	return WriteSummary(w, rs)
}

// GenerateChart writes a PNG bar chart of average latency per endpoint
func (g *Generator) GenerateChart(filename string, endpoints []models.Endpoint) error {
	rs, err := g.store.GetResultSet(endpoints)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	if err := RenderChart(file, rs); err != nil {
		file.Close()
		os.Remove(filename)
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}

	g.logger.Info().Str("path", filename).Msg("Latency chart written")
	return nil
}
