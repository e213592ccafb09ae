package nomogram

import (
	"fmt"
	"math"
)

// Limits is a closed interval on one axis.
type Limits struct {
	Min, Max float64
}

// Valid reports whether l is a finite, non-empty interval.
func (l Limits) Valid() bool {
	return !math.IsNaN(l.Min) && !math.IsNaN(l.Max) &&
		!math.IsInf(l.Min, 0) && !math.IsInf(l.Max, 0) && l.Min < l.Max
}

// Sorted returns l with Min <= Max.
func (l Limits) Sorted() Limits {
	if l.Min > l.Max {
		return Limits{Min: l.Max, Max: l.Min}
	}
	return l
}

// Contains reports whether v lies in l, allowing a relative slack of Eps.
func (l Limits) Contains(v float64) bool {
	tol := Eps * math.Max(math.Abs(l.Min), math.Abs(l.Max))
	return v >= l.Min-tol && v <= l.Max+tol
}

// safeLog returns log10 of the sorted limits, replacing a non-positive lower
// bound by 1e-4 of the upper bound, or 1e-30 when both are non-positive.
func (l Limits) safeLog() Limits {
	s := l.Sorted()
	if s.Min <= 0 {
		if s.Max > 0 {
			s.Min = s.Max * 1e-4
		} else {
			s.Min = 1e-30
			if s.Max <= 0 {
				s.Max = 1
			}
		}
	}
	return Limits{Min: math.Log10(s.Min), Max: math.Log10(s.Max)}
}

func (l Limits) pow10() Limits {
	return Limits{Min: math.Pow(10, l.Min), Max: math.Pow(10, l.Max)}
}

// CheckPositive validates l for use on a logarithmic axis.
func (l Limits) CheckPositive() error {
	if !l.Valid() {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidLimits, l.Min, l.Max)
	}
	if l.Min <= 0 {
		return fmt.Errorf("%w: lower limit %g", ErrNonPositive, l.Min)
	}
	return nil
}

// LogLog maps (frequency, velocity) onto the unit square using base-10
// logarithms of both axes. (0, 0) is the lower left corner of the view.
type LogLog struct {
	X, Y Limits
}

// NewLogLog validates both limits.
func NewLogLog(x, y Limits) (LogLog, error) {
	if err := x.CheckPositive(); err != nil {
		return LogLog{}, fmt.Errorf("frequency: %w", err)
	}
	if err := y.CheckPositive(); err != nil {
		return LogLog{}, fmt.Errorf("velocity: %w", err)
	}
	return LogLog{X: x, Y: y}, nil
}

// Forward maps a data point to display coordinates.
func (p LogLog) Forward(f, v float64) (x, y float64, err error) {
	if f <= 0 || v <= 0 {
		return 0, 0, fmt.Errorf("%w: (%g, %g)", ErrNonPositive, f, v)
	}
	return normLog(p.X, f), normLog(p.Y, v), nil
}

// Inverse maps display coordinates back to data coordinates.
func (p LogLog) Inverse(x, y float64) (f, v float64) {
	return denormLog(p.X, x), denormLog(p.Y, y)
}

func normLog(l Limits, v float64) float64 {
	lo, hi := math.Log10(l.Min), math.Log10(l.Max)
	return (math.Log10(v) - lo) / (hi - lo)
}

func denormLog(l Limits, t float64) float64 {
	lo, hi := math.Log10(l.Min), math.Log10(l.Max)
	return math.Pow(10, lo+t*(hi-lo))
}
