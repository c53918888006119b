package report

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/parthpatel/ufcpredict/internal/pkg/models"
)

// Bar colors: orange for fighter A, blue for fighter B.
var (
	colorFighterA = drawing.ColorFromHex("ff4500")
	colorFighterB = drawing.ColorFromHex("1e90ff")
)

// RenderChart writes a two-bar likelihood chart as a PNG to path.
func RenderChart(path string, result models.PredictionResult, a, b models.FighterStats) error {
	graph := chart.BarChart{
		Title:    "UFC Fight Prediction Likelihood",
		Width:    800,
		Height:   600,
		BarWidth: 160,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 24, Right: 24, Bottom: 24},
		},
		YAxis: chart.YAxis{
			Name:  "Prediction Likelihood (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Bars: []chart.Value{
			{
				Label: fmt.Sprintf("%s (%v%%)", a.Name, result.LikelihoodA),
				Value: result.LikelihoodA,
				Style: chart.Style{FillColor: colorFighterA, StrokeColor: colorFighterA},
			},
			{
				Label: fmt.Sprintf("%s (%v%%)", b.Name, result.LikelihoodB),
				Value: result.LikelihoodB,
				Style: chart.Style{FillColor: colorFighterB, StrokeColor: colorFighterB},
			},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
