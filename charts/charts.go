// Package charts renders a run's history as PNG line charts.
package charts

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/harshith718/ecolens/telemetry"
)

func intSeries(days []int, values []int) plotter.XYs {
	pts := make(plotter.XYs, len(days))
	for i := range days {
		pts[i].X = float64(days[i])
		pts[i].Y = float64(values[i])
	}
	return pts
}

func floatSeries(days []int, values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(days))
	for i := range days {
		pts[i].X = float64(days[i])
		pts[i].Y = values[i]
	}
	return pts
}

// PopulationResource renders prey count, predator count, and the resource
// pool against the day axis.
func PopulationResource(h *telemetry.History, path string) error {
	p := plot.New()
	p.Title.Text = "EcoLens: Population and Resource over Time"
	p.X.Label.Text = "Day"
	p.Y.Label.Text = "Population / Resource"
	p.Legend.Top = true

	err := plotutil.AddLines(p,
		"Prey count", intSeries(h.Day, h.PreyCount),
		"Predator count", intSeries(h.Day, h.PredCount),
		"Resource", floatSeries(h.Day, h.Resource),
	)
	if err != nil {
		return fmt.Errorf("building population chart: %w", err)
	}

	if err := p.Save(9*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Efficiency renders the two average-efficiency series against the day axis.
func Efficiency(h *telemetry.History, path string) error {
	p := plot.New()
	p.Title.Text = "EcoLens: Trait (efficiency) over time"
	p.X.Label.Text = "Day"
	p.Y.Label.Text = "Avg efficiency"
	p.Legend.Top = true

	err := plotutil.AddLines(p,
		"Prey avg efficiency", floatSeries(h.Day, h.PreyAvgEff),
		"Pred avg efficiency", floatSeries(h.Day, h.PredAvgEff),
	)
	if err != nil {
		return fmt.Errorf("building efficiency chart: %w", err)
	}

	if err := p.Save(9*vg.Inch, 3*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Phase renders the predator count against the prey count, tracing the orbit
// of the two populations through state space.
func Phase(h *telemetry.History, path string) error {
	p := plot.New()
	p.Title.Text = "EcoLens: Phase plot (Predator vs Prey)"
	p.X.Label.Text = "Prey count"
	p.Y.Label.Text = "Predator count"

	pts := make(plotter.XYs, h.Len())
	for i := 0; i < h.Len(); i++ {
		pts[i].X = float64(h.PreyCount[i])
		pts[i].Y = float64(h.PredCount[i])
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("building phase trace: %w", err)
	}
	p.Add(line, scatter)

	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// RenderAll writes the three standard charts into dir and returns their paths.
func RenderAll(h *telemetry.History, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating chart directory: %w", err)
	}

	popPath := filepath.Join(dir, "ecolens_pop_resource.png")
	if err := PopulationResource(h, popPath); err != nil {
		return nil, err
	}
	effPath := filepath.Join(dir, "ecolens_efficiency.png")
	if err := Efficiency(h, effPath); err != nil {
		return nil, err
	}
	phasePath := filepath.Join(dir, "ecolens_phase.png")
	if err := Phase(h, phasePath); err != nil {
		return nil, err
	}
	return []string{popPath, effPath, phasePath}, nil
}
