package rendering

import (
	"fmt"
	"math"
	"sort"

	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/RMahshie/vibronomogram/pkg/nomogram"
	"gonum.org/v1/gonum/floats"
)

var demos = map[string]func() *models.ChartSpec{
	"simple": simpleDemo,
	"srs":    srsDemo,
}

// DemoNames lists the built-in demo charts
func DemoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Demo returns the spec of a built-in demo chart
func Demo(name string) (*models.ChartSpec, error) {
	f, ok := demos[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q (available: %v)", name, DemoNames())
	}
	return f(), nil
}

// simpleDemo draws a 1 mm displacement twice: once converted to velocity by
// hand, once on the displacement axis. Both lines coincide.
func simpleDemo() *models.ChartSpec {
	const disp = 1e-3
	freqs := floats.LogSpan(make([]float64, 100), 1, 1000)

	velo := make([]models.FrequencyPoint, len(freqs))
	flat := make([]models.FrequencyPoint, len(freqs))
	for i, f := range freqs {
		velo[i] = models.FrequencyPoint{Frequency: f, Value: disp * 2 * math.Pi * f}
		flat[i] = models.FrequencyPoint{Frequency: f, Value: disp}
	}

	return &models.ChartSpec{
		Title: "Constant displacement of 1 mm",
		Grid: &models.GridSpec{
			Major:      true,
			Minor:      true,
			MajorStyle: &models.LineStyle{Color: "#808080", Dashes: []float64{4, 2}},
			MinorStyle: &models.LineStyle{Color: "#808080", Dashes: []float64{4, 2}},
		},
		Series: []models.Series{
			{Name: "Displacement s = v/ω (velocity)", Quantity: string(nomogram.Velocity), Color: "#000000", Points: velo},
			{Name: "Displacement s (displacement)", Quantity: string(nomogram.Displacement), Color: "#d62728", Points: flat},
		},
	}
}

// srsDemo is a shock response spectrum rising at constant velocity from
// 10 g at 10 Hz to 100 g at 100 Hz, then flat to 2 kHz.
func srsDemo() *models.ChartSpec {
	g := nomogram.StandardGravity
	return &models.ChartSpec{
		Title:               "Vibro-Nomogram SRS Demonstrator",
		VelocityLimits:      []float64{0.01, 10},
		UseGravityFormatter: true,
		Grid: &models.GridSpec{
			Major:      true,
			Minor:      true,
			MajorStyle: &models.LineStyle{Color: "#000000", Width: 0.8, Alpha: 0.4},
			MinorStyle: &models.LineStyle{Color: "#000000", Width: 0.5, Alpha: 0.2},
		},
		Series: []models.Series{{
			Name:     "SRS Profile",
			Quantity: string(nomogram.Acceleration),
			Color:    "#ff0000",
			Points: []models.FrequencyPoint{
				{Frequency: 10, Value: 10 * g},
				{Frequency: 100, Value: 100 * g},
				{Frequency: 2000, Value: 100 * g},
			},
		}},
		Zones: []models.Zone{
			{Quantity: string(nomogram.Velocity), Above: 3},
			{Quantity: string(nomogram.Acceleration), Above: 3000},
			{Quantity: string(nomogram.Displacement), Above: 0.03},
		},
	}
}
