// Package render отдаёт готовые данные внешним форматам: PNG-диаграмме и GeoJSON.
package render

import (
	"errors"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/shenikar/coverage_map/internal/models"
)

const (
	barWidth   = 20
	barSpacing = 6
	chartPad   = 160
	minWidth   = 800
	height     = 500
)

var (
	uninsuredFill = drawing.Color{R: 217, G: 83, B: 79, A: 255}
	restFill      = drawing.Color{R: 124, G: 181, B: 236, A: 255}
)

// ChartPNG рисует диаграмму столбцами с накоплением: снизу незастрахованные,
// сверху остальное население. Ряды берутся по именам из ChartData.
func ChartPNG(w io.Writer, data *models.ChartData) error {
	if data == nil || len(data.Categories) == 0 {
		return errors.New("render: no categories to draw")
	}
	total, uninsured, err := splitSeries(data)
	if err != nil {
		return err
	}

	bars := make([]chart.StackedBar, len(data.Categories))
	for i, name := range data.Categories {
		rest := total[i] - uninsured[i]
		if rest < 0 {
			rest = 0
		}
		bars[i] = chart.StackedBar{
			Name:  name,
			Width: barWidth,
			Values: []chart.Value{
				{Label: "Uninsured", Value: float64(uninsured[i]), Style: chart.Style{FillColor: uninsuredFill}},
				{Label: "Insured or unknown", Value: float64(rest), Style: chart.Style{FillColor: restFill}},
			},
		}
	}

	width := chartPad + len(bars)*(barWidth+barSpacing)
	if width < minWidth {
		width = minWidth
	}

	graph := chart.StackedBarChart{
		Title:      data.Title,
		Width:      width,
		Height:     height,
		BarSpacing: barSpacing,
		Bars:       bars,
	}
	return graph.Render(chart.PNG, w)
}

func splitSeries(data *models.ChartData) (total, uninsured []int64, err error) {
	for _, s := range data.Series {
		switch s.Name {
		case models.SeriesTotal:
			total = s.Data
		case models.SeriesUninsured:
			uninsured = s.Data
		}
	}
	if len(total) != len(data.Categories) || len(uninsured) != len(data.Categories) {
		return nil, nil, errors.New("render: series are not aligned with categories")
	}
	return total, uninsured, nil
}
