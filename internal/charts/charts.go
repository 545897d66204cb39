// Package charts exports the dashboard visualizations as PNG files.
package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// TrendPNG renders the income/expenses/balance trend as a line chart and
// writes it under dir. Returns the written path.
func TrendPNG(points []model.TrendPoint, dir string) (string, error) {
	if len(points) == 0 {
		return "", fmt.Errorf("no trend points to render")
	}

	xValues := make([]float64, len(points))
	income := make([]float64, len(points))
	expenses := make([]float64, len(points))
	balance := make([]float64, len(points))
	ticks := make([]chart.Tick, len(points))
	for i, p := range points {
		xValues[i] = float64(i)
		income[i] = p.Income
		expenses[i] = p.Expenses
		balance[i] = p.Balance
		ticks[i] = chart.Tick{Value: float64(i), Label: p.Label}
	}

	graph := chart.Chart{
		Width:  1000,
		Height: 500,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f €", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Entrate",
				XValues: xValues,
				YValues: income,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Uscite",
				XValues: xValues,
				YValues: expenses,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "Bilancio",
				XValues: xValues,
				YValues: balance,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return writePNG(graph.Render, dir, "trend.png")
}

// CategoryPNG renders the expense-by-category breakdown as a bar chart.
func CategoryPNG(byCategory []model.CategoryAmount, dir string) (string, error) {
	if len(byCategory) == 0 {
		return "", fmt.Errorf("no categories to render")
	}

	bars := make([]chart.Value, len(byCategory))
	for i, c := range byCategory {
		bars[i] = chart.Value{Label: c.Category, Value: c.Amount}
	}

	graph := chart.BarChart{
		Width:    800,
		Height:   500,
		BarWidth: 50,
		Background: chart.Style{
			Padding:   chart.Box{Top: 40, Left: 40, Right: 40, Bottom: 40},
			FillColor: chart.ColorWhite,
		},
		Bars: bars,
	}

	return writePNG(graph.Render, dir, "categorie.png")
}

func writePNG(render func(chart.RendererProvider, io.Writer) error, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return path, nil
}
