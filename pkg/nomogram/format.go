package nomogram

import (
	"fmt"
	"math"
)

// Formatter turns a tick value into a label.
type Formatter interface {
	Format(v float64) string
}

// FuncFormatter adapts a function to a Formatter.
type FuncFormatter func(v float64) string

// Format implements Formatter.
func (f FuncFormatter) Format(v float64) string { return f(v) }

// GeneralFormatter prints two significant digits.
var GeneralFormatter = FuncFormatter(func(v float64) string {
	return fmt.Sprintf("%.2g", v)
})

// DisplacementFormatter scales metres to µm, mm or m and prints five
// significant digits.
type DisplacementFormatter struct{}

// Format implements Formatter.
func (DisplacementFormatter) Format(x float64) string {
	if x == 0 {
		return "0"
	}
	var (
		val  float64
		unit string
	)
	switch abs := math.Abs(x); {
	case abs < 1e-3:
		val, unit = x*1e6, "µm"
	case abs < 1:
		val, unit = x*1e3, "mm"
	default:
		val, unit = x, "m"
	}
	return fmt.Sprintf("%.5g %s", val, unit)
}

// AccelFormatter prints accelerations in m/s².
type AccelFormatter struct{}

// Format implements Formatter.
func (AccelFormatter) Format(x float64) string {
	if math.Abs(x) < 1e-15 {
		return "0"
	}
	return fmt.Sprintf("%.4g m/s²", snapInteger(x))
}

// GravityFormatter prints accelerations in multiples of g.
type GravityFormatter struct {
	G float64
}

// Format implements Formatter.
func (f GravityFormatter) Format(x float64) string {
	g := f.G
	if g == 0 {
		g = StandardGravity
	}
	v := x / g
	if math.Abs(v) < 1e-15 {
		return "0"
	}
	return fmt.Sprintf("%.4g g", snapInteger(v))
}

func snapInteger(x float64) float64 {
	if r := math.Round(x); math.Abs(x-r) < 1e-9 {
		return r
	}
	return x
}
