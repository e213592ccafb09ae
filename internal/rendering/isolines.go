package rendering

import (
	"fmt"

	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/RMahshie/vibronomogram/pkg/nomogram"
)

// IsoLines returns the displacement and acceleration lines visible in the
// requested view, clipped to it.
func IsoLines(req models.IsoLinesRequestBody) (*models.IsoLinesResponseBody, error) {
	x, err := limitsOf("frequency", req.FrequencyLimits)
	if err != nil {
		return nil, err
	}
	y, err := limitsOf("velocity", req.VelocityLimits)
	if err != nil {
		return nil, err
	}

	fs := nomogram.NewFrequencySpace(nomogram.Options{UseGravityFormatter: req.UseGravityFormatter})
	resp := &models.IsoLinesResponseBody{
		Displacement: gridLines(fs.IAxis, x, y, req.Minor),
		Acceleration: gridLines(fs.DAxis, x, y, req.Minor),
	}
	return resp, nil
}

func limitsOf(name string, v []float64) (nomogram.Limits, error) {
	if len(v) != 2 {
		return nomogram.Limits{}, fmt.Errorf("%w: %s limits need 2 values, got %d", ErrInvalidSpec, name, len(v))
	}
	l := nomogram.Limits{Min: v[0], Max: v[1]}.Sorted()
	if err := l.CheckPositive(); err != nil {
		return l, fmt.Errorf("%w: %s limits: %w", ErrInvalidSpec, name, err)
	}
	return l, nil
}

func gridLines(ax *nomogram.OrderAxis, x, y nomogram.Limits, minor bool) []models.IsoLine {
	out := []models.IsoLine{}
	add := func(which nomogram.Which) {
		for _, l := range ax.GridLines(which, x, y, nomogram.LogScale, nomogram.LogScale) {
			out = append(out, models.IsoLine{
				Value: l.Value,
				Label: l.Label,
				Minor: which == nomogram.Minor,
				Start: models.ChartPoint{Frequency: l.Start.X, Velocity: l.Start.Y},
				End:   models.ChartPoint{Frequency: l.End.X, Velocity: l.End.Y},
			})
		}
	}
	add(nomogram.Major)
	if minor {
		add(nomogram.Minor)
	}
	return out
}
