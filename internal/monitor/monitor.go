package monitor

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"polyping/internal/config"
	"polyping/internal/models"
)

// Monitor probes each configured endpoint in turn
type Monitor struct {
	config config.Config
	store  models.ResultStore
	pinger models.Pinger
	out    io.Writer
	logger zerolog.Logger
}

// New creates a new Monitor that prints progress to out
func New(cfg config.Config, store models.ResultStore, pinger models.Pinger, out io.Writer, logger zerolog.Logger) *Monitor {
	return &Monitor{
		config: cfg,
		store:  store,
		pinger: pinger,
		out:    out,
		logger: logger,
	}
}

// Run probes every endpoint sequentially, in table order. It returns early
// only when ctx is canceled or a result cannot be stored.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Debug().Str("settings", m.config.Summary()).Msg("Starting run")

	fmt.Fprintf(m.out, "Pinging Polymarket servers (%d rounds each)\n\n", m.config.Rounds)

	for _, ep := range m.config.Endpoints {
		fmt.Fprintf(m.out, "[%s] %s\n", ep.Name, ep.URL)

		samples, err := m.probeEndpoint(ctx, ep)
		if err != nil {
			return err
		}

		m.logger.Debug().
			Str("endpoint", ep.Name).
			Int("successful", len(samples)).
			Int("rounds", m.config.Rounds).
			Msg("Endpoint probed")

		fmt.Fprintln(m.out)
	}

	return nil
}
