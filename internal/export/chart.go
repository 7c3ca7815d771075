package export

import (
	"fmt"

	"github.com/go-analyze/charts"

	"fintrack/internal/report"
)

// DistributionChart renders category totals as a PNG pie chart.
// Returns ErrNoData when every total is zero.
func DistributionChart(totals []report.CategoryTotal, title string) ([]byte, error) {
	var values []float64
	var labels []string

	for _, ct := range totals {
		if !ct.Total.IsPositive() {
			continue
		}
		labels = append(labels, string(ct.Category))
		values = append(values, ct.Total.InexactFloat64())
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: title,
		}),
		charts.LegendLabelsOptionFunc(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf, nil
}
