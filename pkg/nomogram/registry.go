package nomogram

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"sort"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// FrequencySpaceName is the registered name of the FrequencySpace projection.
const FrequencySpaceName = "frequency_space"

// ErrUnknownProjection is returned by New for names that were never
// registered.
var ErrUnknownProjection = errors.New("unknown projection")

// Axes is what a registered projection hands back to its caller.
type Axes interface {
	Plot() *plot.Plot
	SetXLim(min, max float64) error
	SetYLim(min, max float64) error
	XLim() Limits
	YLim() Limits
	Grid(visible bool, which Which, axis Axis, opts ...GridOption)
	PlotOn(q Quantity, name string, xys plotter.XYer, style *draw.LineStyle) (*plotter.Line, error)
	FillAbove(q Quantity, threshold float64, c color.Color) error
	WriterTo(w, h vg.Length, format string) (io.WriterTo, error)
	Save(w, h vg.Length, path string) error
}

// Factory builds the axes of a projection.
type Factory func(Options) (Axes, error)

var (
	projectionsMu sync.RWMutex
	projections   = make(map[string]Factory)
)

func init() {
	Register(FrequencySpaceName, func(opts Options) (Axes, error) {
		return NewFrequencySpace(opts), nil
	})
}

// Register makes a projection available by name. It panics if the name is
// taken or the factory is nil.
func Register(name string, f Factory) {
	projectionsMu.Lock()
	defer projectionsMu.Unlock()
	if f == nil {
		panic("nomogram: Register factory is nil")
	}
	if _, dup := projections[name]; dup {
		panic("nomogram: Register called twice for projection " + name)
	}
	projections[name] = f
}

// New creates axes of the named projection.
func New(name string, opts Options) (Axes, error) {
	projectionsMu.RLock()
	f, ok := projections[name]
	projectionsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProjection, name)
	}
	return f(opts)
}

// Names returns the registered projection names in sorted order.
func Names() []string {
	projectionsMu.RLock()
	defer projectionsMu.RUnlock()
	names := make([]string, 0, len(projections))
	for name := range projections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
