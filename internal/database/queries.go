package database

import (
	"database/sql"
	"fmt"

	"polyping/internal/models"
)

// SaveResult records one round, failed or not
func (db *DB) SaveResult(result models.PingResult) error {
	query := `
        INSERT INTO round_results (timestamp, endpoint, url, round, success, rtt_ms, status_code, error_message)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	var (
		rtt    sql.NullFloat64
		status sql.NullInt64
		errMsg sql.NullString
	)
	if result.Success {
		rtt = sql.NullFloat64{Float64: result.RTT, Valid: true}
		status = sql.NullInt64{Int64: int64(result.StatusCode), Valid: true}
	} else {
		errMsg = sql.NullString{String: result.ErrorMessage, Valid: true}
	}

	_, err := db.Exec(query,
		result.Timestamp,
		result.Endpoint.Name,
		result.Endpoint.URL,
		result.Round,
		result.Success,
		rtt,
		status,
		errMsg,
	)
	if err != nil {
		return fmt.Errorf("save round %d for %q: %w", result.Round, result.Endpoint.Name, err)
	}
	return nil
}

// GetSamples retrieves the successful latencies of an endpoint in round order
func (db *DB) GetSamples(endpoint string) ([]float64, error) {
	query := `
        SELECT rtt_ms
        FROM round_results
        WHERE endpoint = ? AND success = 1
        ORDER BY round, id
    `

	rows, err := db.Query(query, endpoint)
	if err != nil {
		return nil, fmt.Errorf("query samples for %q: %w", endpoint, err)
	}
	defer rows.Close()

	var samples []float64
	for rows.Next() {
		var rtt float64
		if err := rows.Scan(&rtt); err != nil {
			return nil, fmt.Errorf("scan sample for %q: %w", endpoint, err)
		}
		samples = append(samples, rtt)
	}

	return samples, rows.Err()
}

// GetResultSet collects the samples of every endpoint, keeping the given order
func (db *DB) GetResultSet(endpoints []models.Endpoint) (models.ResultSet, error) {
	rs := make(models.ResultSet, 0, len(endpoints))
	for _, ep := range endpoints {
		samples, err := db.GetSamples(ep.Name)
		if err != nil {
			return nil, err
		}
		rs = append(rs, models.EndpointSamples{Endpoint: ep, Samples: samples})
	}
	return rs, nil
}

// CountRounds returns how many rounds were recorded for an endpoint
func (db *DB) CountRounds(endpoint string) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM round_results WHERE endpoint = ?`, endpoint).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count rounds for %q: %w", endpoint, err)
	}
	return n, nil
}
