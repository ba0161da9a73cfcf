package models

// Stats represents the latency summary of one endpoint's samples
type Stats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min_ms"`
	Avg    float64 `json:"avg_ms"`
	Max    float64 `json:"max_ms"`
	Jitter float64 `json:"jitter_ms"` // sample standard deviation
}

// EndpointSamples holds the successful latencies of one endpoint in round order
type EndpointSamples struct {
	Endpoint Endpoint
	Samples  []float64
}

// ResultSet is the collected samples of a run, in endpoint table order
type ResultSet []EndpointSamples

// Samples returns the samples recorded for the named endpoint
func (rs ResultSet) Samples(name string) []float64 {
	for _, es := range rs {
		if es.Endpoint.Name == name {
			return es.Samples
		}
	}
	return nil
}
