package monitor

import (
	"context"
	"fmt"

	"polyping/internal/models"
)

// probeEndpoint runs the configured number of rounds against one endpoint
// and returns the successful latencies in round order
func (m *Monitor) probeEndpoint(ctx context.Context, ep models.Endpoint) ([]float64, error) {
	samples := make([]float64, 0, m.config.Rounds)

	for round := 1; round <= m.config.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return samples, fmt.Errorf("probing %s stopped at round %d: %w", ep.Name, round, err)
		}

		result := m.pinger.Ping(ctx, ep, round)
		if err := m.store.SaveResult(result); err != nil {
			return samples, err
		}
		m.report(result)

		if result.Success {
			samples = append(samples, result.RTT)
		}
	}

	return samples, nil
}

// report prints the outcome of a single round
func (m *Monitor) report(result models.PingResult) {
	if !result.Success {
		fmt.Fprintf(m.out, "  Round %d: FAILED (%s)\n", result.Round, result.ErrorMessage)
		m.logger.Debug().
			Str("endpoint", result.Endpoint.Name).
			Int("round", result.Round).
			Str("error", result.ErrorMessage).
			Msg("Round failed")
		return
	}

	fmt.Fprintf(m.out, "  Round %d: %.0fms (HTTP %d)\n", result.Round, result.RTT, result.StatusCode)
	m.logger.Debug().
		Str("endpoint", result.Endpoint.Name).
		Int("round", result.Round).
		Float64("latency_ms", result.RTT).
		Int("status", result.StatusCode).
		Msg("Round completed")
}
