package report

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"polyping/internal/models"
	"polyping/internal/stats"
)

// ErrNoSamples is returned when no endpoint produced a latency sample
var ErrNoSamples = errors.New("no successful samples to chart")

// RenderChart draws average latency per endpoint as a PNG bar chart.
// Endpoints without samples are left out.
func RenderChart(w io.Writer, rs models.ResultSet) error {
	var (
		bars []chart.Value
		peak float64
	)

	for i, es := range rs {
		s, ok := stats.Summarize(es.Samples)
		if !ok {
			continue
		}
		bars = append(bars, chart.Value{
			Label: es.Endpoint.Name,
			Value: s.Avg,
			Style: chart.Style{
				FillColor:   chart.GetDefaultColor(i),
				StrokeColor: chart.GetDefaultColor(i),
			},
		})
		if s.Max > peak {
			peak = s.Max
		}
	}

	if len(bars) == 0 {
		return ErrNoSamples
	}
	if peak <= 0 {
		peak = 1
	}

	graph := chart.BarChart{
		Title: "Average Latency (ms)",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    800,
		Height:   400,
		BarWidth: 80,
		YAxis: chart.YAxis{
			Style: chart.Style{
				StrokeColor: drawing.ColorBlack,
				FontSize:    10,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: peak * 1.1,
			},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}
