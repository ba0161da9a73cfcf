package ping

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"polyping/internal/models"
)

// Pinger times HTTP GET round trips
type Pinger struct {
	client *http.Client
	now    func() time.Time
}

// New creates a new Pinger whose requests give up after timeout
func New(timeout time.Duration) *Pinger {
	return NewWithClient(&http.Client{Timeout: timeout})
}

// NewWithClient creates a Pinger that issues requests through client
func NewWithClient(client *http.Client) *Pinger {
	return &Pinger{client: client, now: time.Now}
}

// Ping issues one GET to the endpoint and returns the timed result.
// Transport failures are reported in the result, never as an error:
// HTTP error statuses still count as successful rounds.
func (p *Pinger) Ping(ctx context.Context, endpoint models.Endpoint, round int) models.PingResult {
	result := models.PingResult{
		Timestamp: p.now(),
		Endpoint:  endpoint,
		Round:     round,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.URL, nil)
	if err != nil {
		result.ErrorMessage = err.Error()
		return result
	}

	start := time.Now()
	status, err := p.do(req)
	elapsed := time.Since(start)

	if err != nil {
		result.ErrorMessage = err.Error()
		return result
	}

	result.Success = true
	result.StatusCode = status
	result.RTT = float64(elapsed) / float64(time.Millisecond)
	return result
}

// do sends req and drains the body so the measurement covers the full response
func (p *Pinger) do(req *http.Request) (int, error) {
	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return 0, fmt.Errorf("read response body: %w", err)
	}
	return resp.StatusCode, nil
}
