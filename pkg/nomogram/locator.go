package nomogram

import (
	"math"

	"gonum.org/v1/plot"
)

// Locator chooses tick values for an interval.
type Locator interface {
	TickValues(vmin, vmax float64) []float64
}

// LogLocator places ticks at Subs·Base^k. With NumTicks > 0 decades are
// skipped so that no more than roughly NumTicks decades carry ticks. The
// result may extend one decade beyond the interval; callers clip.
type LogLocator struct {
	Base     float64
	Subs     []float64
	NumTicks int
}

// NewLogLocator returns a base 10 locator with one tick per decade.
func NewLogLocator(numTicks int) LogLocator {
	return LogLocator{Base: 10, Subs: []float64{1}, NumTicks: numTicks}
}

// NewMinorLogLocator returns a base 10 locator with ticks at 2..9 of every
// decade.
func NewMinorLogLocator() LogLocator {
	return LogLocator{Base: 10, Subs: []float64{2, 3, 4, 5, 6, 7, 8, 9}}
}

// TickValues implements Locator. Non-positive intervals yield no ticks.
func (l LogLocator) TickValues(vmin, vmax float64) []float64 {
	if vmin <= 0 || vmax <= 0 || math.IsNaN(vmin) || math.IsNaN(vmax) ||
		math.IsInf(vmin, 0) || math.IsInf(vmax, 0) {
		return []float64{}
	}
	if vmin > vmax {
		vmin, vmax = vmax, vmin
	}
	base := l.Base
	if base <= 1 {
		base = 10
	}
	subs := l.Subs
	if len(subs) == 0 {
		subs = []float64{1}
	}
	logb := func(v float64) float64 { return math.Log(v) / math.Log(base) }

	lo := math.Floor(logb(vmin))
	hi := math.Ceil(logb(vmax))
	stride := 1
	if l.NumTicks > 1 {
		numDec := hi - lo
		stride = int(math.Max(1, math.Ceil(numDec/float64(l.NumTicks-1))))
	}

	ticks := make([]float64, 0, int(hi-lo+1)*len(subs))
	for k := lo; k <= hi; k += float64(stride) {
		decade := math.Pow(base, k)
		for _, s := range subs {
			ticks = append(ticks, s*decade)
		}
	}
	return ticks
}

// GravityLocator places log ticks at multiples of standard gravity.
type GravityLocator struct {
	LogLocator
	G float64
}

// NewGravityLocator returns a locator with ticks at 10^k g.
func NewGravityLocator() GravityLocator {
	return GravityLocator{LogLocator: NewLogLocator(15), G: StandardGravity}
}

// TickValues implements Locator.
func (l GravityLocator) TickValues(vmin, vmax float64) []float64 {
	if vmin <= 0 || vmax <= 0 {
		return []float64{}
	}
	g := l.G
	if g == 0 {
		g = StandardGravity
	}
	ticks := l.LogLocator.TickValues(vmin/g, vmax/g)
	for i := range ticks {
		ticks[i] *= g
	}
	return ticks
}

// Ticker adapts a major and an optional minor locator to a gonum
// plot.Ticker. Major ticks are labelled by Format; minor ticks are not.
type Ticker struct {
	Major  Locator
	Minor  Locator
	Format Formatter
}

// Ticks implements plot.Ticker.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	lim := Limits{Min: min, Max: max}.Sorted()
	if t.Major != nil {
		for _, v := range t.Major.TickValues(lim.Min, lim.Max) {
			if !lim.Contains(v) {
				continue
			}
			label := ""
			if t.Format != nil {
				label = t.Format.Format(v)
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: label})
		}
	}
	if t.Minor != nil {
		for _, v := range t.Minor.TickValues(lim.Min, lim.Max) {
			if lim.Contains(v) {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	return ticks
}
