package report

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/NLynch19/Handover/internal/models"
)

// StatusChart renders the status distribution as a PNG bar chart, one
// bar per status in display order.
func StatusChart(summary Summary) ([]byte, error) {
	bars := make([]chart.Value, 0, len(models.Statuses))
	for _, status := range models.Statuses {
		bars = append(bars, chart.Value{
			Label: status,
			Value: float64(summary.ByStatus[status]),
		})
	}

	graph := chart.BarChart{
		Title:    "Tasks by Status",
		Height:   400,
		BarWidth: 80,
		Bars:     bars,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
		},
	}

	var buf bytes.Buffer
	err := graph.Render(chart.PNG, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to render status chart: %w", err)
	}
	return buf.Bytes(), nil
}
