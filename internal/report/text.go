package report

import (
	"fmt"
	"io"
	"strings"

	"polyping/internal/models"
	"polyping/internal/stats"
)

const ruleWidth = 60

// WriteSummary renders the fixed-width latency table. Endpoints without
// samples are marked FAILED.
func WriteSummary(w io.Writer, rs models.ResultSet) error {
	var b strings.Builder

	fmt.Fprintln(&b, strings.Repeat("=", ruleWidth))
	fmt.Fprintf(&b, "%-15s %8s %8s %8s %8s\n", "Endpoint", "Min", "Avg", "Max", "Jitter")
	fmt.Fprintln(&b, strings.Repeat("-", ruleWidth))

	for _, es := range rs {
		s, ok := stats.Summarize(es.Samples)
		if !ok {
			fmt.Fprintf(&b, "%-15s %8s\n", es.Endpoint.Name, "FAILED")
			continue
		}
		fmt.Fprintf(&b, "%-15s %s %s %s %s\n", es.Endpoint.Name,
			msColumn(s.Min), msColumn(s.Avg), msColumn(s.Max), msColumn(s.Jitter))
	}

	fmt.Fprintln(&b, strings.Repeat("=", ruleWidth))

	_, err := io.WriteString(w, b.String())
	return err
}

// msColumn formats a latency as whole milliseconds right-aligned in seven columns
func msColumn(v float64) string {
	return fmt.Sprintf("%7.0fms", v)
}
