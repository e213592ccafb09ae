package nomogram

import (
	"errors"
	"fmt"
	"math"
)

const (
	// Eps is the smallest value accepted on a logarithmic axis.
	Eps = 1e-9

	// StandardGravity is g in m/s² as used by the gravity locator and formatter.
	StandardGravity = 9.81
)

var (
	twoPi    = 2 * math.Pi
	logTwoPi = math.Log10(twoPi)
)

var (
	// ErrNonPositive is returned when a value that must lie on a logarithmic
	// axis is zero or negative.
	ErrNonPositive = errors.New("value must be positive on a logarithmic axis")

	// ErrInvalidLimits is returned for empty or inverted axis limits.
	ErrInvalidLimits = errors.New("invalid axis limits")

	// ErrUnknownQuantity is returned for a quantity name that is not velocity,
	// displacement or acceleration.
	ErrUnknownQuantity = errors.New("unknown quantity")
)

// Order is the exponent of the angular frequency 2πf relating a derived
// quantity Y to velocity v: Y = v / (2πf)^order.
//
//	-2  second derivative
//	-1  first derivative (acceleration)
//	 0  identity (velocity)
//	+1  first integral (displacement)
//	+2  second integral
type Order int

const (
	OrderAcceleration Order = -1
	OrderVelocity     Order = 0
	OrderDisplacement Order = 1
)

// Quantity names a physical quantity shown on the nomogram.
type Quantity string

const (
	Velocity     Quantity = "velocity"
	Displacement Quantity = "displacement"
	Acceleration Quantity = "acceleration"
)

// Order returns the order relating q to velocity.
func (q Quantity) Order() (Order, error) {
	switch q {
	case Velocity, "":
		return OrderVelocity, nil
	case Displacement:
		return OrderDisplacement, nil
	case Acceleration:
		return OrderAcceleration, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownQuantity, string(q))
	}
}

// Unit returns the SI unit of q.
func (q Quantity) Unit() string {
	switch q {
	case Displacement:
		return "m"
	case Acceleration:
		return "m/s²"
	default:
		return "m/s"
	}
}

// FromVelocity converts velocity v at frequency f into the quantity of
// this order.
func (o Order) FromVelocity(f, v float64) float64 {
	return v / math.Pow(twoPi*f, float64(o))
}

// Velocity converts a value of this order at frequency f back to velocity.
// For acceleration this is a/(2πf), for displacement s·2πf.
func (o Order) Velocity(f, y float64) float64 {
	return y * math.Pow(twoPi*f, float64(o))
}

// LogFromVelocity is FromVelocity in log10 space.
func (o Order) LogFromVelocity(f, v float64) float64 {
	return math.Log10(v) - float64(o)*(logTwoPi+math.Log10(f))
}

// LogVelocity is Velocity in log10 space.
func (o Order) LogVelocity(f, y float64) float64 {
	return math.Log10(y) + float64(o)*(logTwoPi+math.Log10(f))
}

// SpecTransform converts (frequency, value) pairs between velocity and a
// quantity of the given order. Frequency passes through unchanged.
type SpecTransform struct {
	Order   Order
	Inverse bool
}

// Apply transforms one point. Frequency and value are clipped to Eps first
// so the result is always defined.
func (t SpecTransform) Apply(f, y float64) (float64, float64) {
	f = math.Max(f, Eps)
	y = math.Max(y, Eps)
	if t.Inverse {
		return f, t.Order.Velocity(f, y)
	}
	return f, t.Order.FromVelocity(f, y)
}

// ApplyXY transforms pts into a new slice.
func (t SpecTransform) ApplyXY(pts [][2]float64) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i][0], out[i][1] = t.Apply(p[0], p[1])
	}
	return out
}

// Inverted returns the transform in the opposite direction.
func (t SpecTransform) Inverted() SpecTransform {
	return SpecTransform{Order: t.Order, Inverse: !t.Inverse}
}

func (t SpecTransform) String() string {
	dir := "forward"
	if t.Inverse {
		dir = "inverse"
	}
	return fmt.Sprintf("SpecTransform(order=%d, %s)", t.Order, dir)
}
