package models

import "time"

// Endpoint is a named URL under test. Names are unique within a run.
type Endpoint struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// PingResult represents a single timed round against an endpoint
type PingResult struct {
	Timestamp    time.Time `json:"timestamp"`
	Endpoint     Endpoint  `json:"endpoint"`
	Round        int       `json:"round"` // 1-based
	Success      bool      `json:"success"`
	RTT          float64   `json:"rtt_ms"` // milliseconds
	StatusCode   int       `json:"status_code"`
	ErrorMessage string    `json:"error_message"`
}
