package models

import "context"

// ResultStore defines operations for keeping round results during a run
type ResultStore interface {
	SaveResult(result PingResult) error
	GetResultSet(endpoints []Endpoint) (ResultSet, error)
}

// Pinger interface defines a single timed request against an endpoint
type Pinger interface {
	Ping(ctx context.Context, endpoint Endpoint, round int) PingResult
}
