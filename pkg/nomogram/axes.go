package nomogram

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Axis selects the main axes a grid call applies to.
type Axis int

const (
	AxisX Axis = 1 << iota
	AxisY
	AxisBoth = AxisX | AxisY
)

// Default view used when neither limits nor data are available.
var (
	DefaultFrequencyLimits = Limits{Min: 1, Max: 1000}
	DefaultVelocityLimits  = Limits{Min: 1e-4, Max: 1}
)

// Options configures a FrequencySpace.
type Options struct {
	XScale, YScale Scale

	// UseGravityFormatter labels the acceleration axis in g and places its
	// ticks at decades of g.
	UseGravityFormatter bool

	Title string

	// Grid turns on the major grids of all four quantities.
	Grid bool
}

// FrequencySpace is a velocity over frequency plot with displacement and
// acceleration iso-lines.
type FrequencySpace struct {
	// IAxis is the integration axis (displacement, order 1).
	IAxis *OrderAxis
	// DAxis is the differentiation axis (acceleration, order -1).
	DAxis *OrderAxis

	plot   *plot.Plot
	opts   Options
	grid   *axisGrid
	xlim   *Limits
	ylim   *Limits
	series int
}

// NewFrequencySpace creates the plot and its order axes.
func NewFrequencySpace(opts Options) *FrequencySpace {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Velocity (m/s)"
	if opts.XScale == LogScale {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = logTicker()
	}
	if opts.YScale == LogScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = logTicker()
	}

	fs := &FrequencySpace{
		IAxis: NewOrderAxis(OrderDisplacement),
		DAxis: NewOrderAxis(OrderAcceleration),
		plot:  p,
		opts:  opts,
		grid:  newAxisGrid(),
	}
	fs.IAxis.Formatter = DisplacementFormatter{}
	if opts.UseGravityFormatter {
		fs.DAxis.MajorLocator = NewGravityLocator()
		fs.DAxis.Formatter = GravityFormatter{}
	} else {
		fs.DAxis.Formatter = AccelFormatter{}
	}

	p.Add(fs.grid, &isoGrid{
		axes:   []*OrderAxis{fs.IAxis, fs.DAxis},
		xScale: opts.XScale,
		yScale: opts.YScale,
	})

	if opts.Grid {
		fs.Grid(true, Major, AxisBoth)
	}
	return fs
}

var decadeFormatter = FuncFormatter(func(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
})

// logTicker labels every decade and marks 2..9 of each decade as minor ticks.
func logTicker() Ticker {
	return Ticker{
		Major:  NewLogLocator(15),
		Minor:  NewMinorLogLocator(),
		Format: decadeFormatter,
	}
}

// Plot returns the underlying gonum plot.
func (fs *FrequencySpace) Plot() *plot.Plot { return fs.plot }

// OrderAxis returns the axis of a derived quantity. Velocity has none.
func (fs *FrequencySpace) OrderAxis(q Quantity) (*OrderAxis, error) {
	switch q {
	case Displacement:
		return fs.IAxis, nil
	case Acceleration:
		return fs.DAxis, nil
	default:
		return nil, fmt.Errorf("%w: no order axis for %q", ErrUnknownQuantity, string(q))
	}
}

// SetXLim fixes the frequency range. Data added later does not change it.
func (fs *FrequencySpace) SetXLim(min, max float64) error {
	l, err := fs.checkLimits(Limits{Min: min, Max: max}, fs.opts.XScale)
	if err != nil {
		return fmt.Errorf("frequency limits: %w", err)
	}
	fs.xlim = &l
	return nil
}

// SetYLim fixes the velocity range.
func (fs *FrequencySpace) SetYLim(min, max float64) error {
	l, err := fs.checkLimits(Limits{Min: min, Max: max}, fs.opts.YScale)
	if err != nil {
		return fmt.Errorf("velocity limits: %w", err)
	}
	fs.ylim = &l
	return nil
}

func (fs *FrequencySpace) checkLimits(l Limits, s Scale) (Limits, error) {
	l = l.Sorted()
	if s == LogScale {
		return l, l.CheckPositive()
	}
	if !l.Valid() {
		return l, fmt.Errorf("%w: [%g, %g]", ErrInvalidLimits, l.Min, l.Max)
	}
	return l, nil
}

// XLim returns the frequency range that will be drawn.
func (fs *FrequencySpace) XLim() Limits {
	return fs.viewLimits(fs.xlim, Limits{Min: fs.plot.X.Min, Max: fs.plot.X.Max}, fs.opts.XScale, DefaultFrequencyLimits)
}

// YLim returns the velocity range that will be drawn.
func (fs *FrequencySpace) YLim() Limits {
	return fs.viewLimits(fs.ylim, Limits{Min: fs.plot.Y.Min, Max: fs.plot.Y.Max}, fs.opts.YScale, DefaultVelocityLimits)
}

func (fs *FrequencySpace) viewLimits(fixed *Limits, data Limits, s Scale, def Limits) Limits {
	if fixed != nil {
		return *fixed
	}
	if l, err := fs.checkLimits(data, s); err == nil {
		return l
	}
	return def
}

// Grid shows or hides the main grid lines of the selected axes. The
// displacement and acceleration grids follow regardless of axis.
func (fs *FrequencySpace) Grid(visible bool, which Which, axis Axis, opts ...GridOption) {
	fs.grid.set(axis, which, visible, opts)
	fs.IAxis.Grid(visible, which, opts...)
	fs.DAxis.Grid(visible, which, opts...)
}

// PlotVelocity draws a velocity spectrum. A nil style picks the next colour
// of the default palette.
func (fs *FrequencySpace) PlotVelocity(name string, xys plotter.XYer, style *draw.LineStyle) (*plotter.Line, error) {
	return fs.PlotOn(Velocity, name, xys, style)
}

// PlotOn draws a spectrum given in units of q by converting every point to
// velocity first.
func (fs *FrequencySpace) PlotOn(q Quantity, name string, xys plotter.XYer, style *draw.LineStyle) (*plotter.Line, error) {
	order, err := q.Order()
	if err != nil {
		return nil, err
	}
	pts := make(plotter.XYs, xys.Len())
	for i := range pts {
		f, y := xys.XY(i)
		if fs.opts.XScale == LogScale && f <= 0 {
			return nil, fmt.Errorf("point %d: frequency %g: %w", i, f, ErrNonPositive)
		}
		if (fs.opts.YScale == LogScale || order != OrderVelocity) && y <= 0 {
			return nil, fmt.Errorf("point %d: %s %g: %w", i, q, y, ErrNonPositive)
		}
		pts[i].X, pts[i].Y = f, order.Velocity(f, y)
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plot %q: %w", name, err)
	}
	if style != nil {
		line.LineStyle = *style
	} else {
		line.LineStyle.Color = plotutil.Color(fs.series)
		line.LineStyle.Width = vg.Points(1.5)
	}
	fs.series++

	fs.plot.Add(line)
	if name != "" {
		fs.plot.Legend.Add(name, line)
	}
	return line, nil
}

// FillAbove shades the region where quantity q exceeds threshold, from the
// threshold iso-line up to the top of the view.
func (fs *FrequencySpace) FillAbove(q Quantity, threshold float64, c color.Color) error {
	order, err := q.Order()
	if err != nil {
		return err
	}
	if threshold <= 0 {
		return fmt.Errorf("%s threshold %g: %w", q, threshold, ErrNonPositive)
	}
	if c == nil {
		c = color.NRGBA{R: 214, G: 39, B: 40, A: 77}
	}
	fs.plot.Add(&zone{order: order, threshold: threshold, color: c})
	return nil
}

// WriterTo draws the chart with the current view limits and returns a
// writer for the given canvas size and image format (png, svg, pdf, ...).
func (fs *FrequencySpace) WriterTo(w, h vg.Length, format string) (wt io.WriterTo, err error) {
	fs.withLimits(func() { wt, err = fs.plot.WriterTo(w, h, format) })
	return wt, err
}

// Save writes the chart to path; the format follows the extension.
func (fs *FrequencySpace) Save(w, h vg.Length, path string) (err error) {
	fs.withLimits(func() { err = fs.plot.Save(w, h, path) })
	return err
}

// withLimits runs fn with the view limits applied to the plot axes and
// restores the data range afterwards, so later data still autoscales.
func (fs *FrequencySpace) withLimits(fn func()) {
	xmin, xmax := fs.plot.X.Min, fs.plot.X.Max
	ymin, ymax := fs.plot.Y.Min, fs.plot.Y.Max
	defer func() {
		fs.plot.X.Min, fs.plot.X.Max = xmin, xmax
		fs.plot.Y.Min, fs.plot.Y.Max = ymin, ymax
	}()

	x, y := fs.XLim(), fs.YLim()
	fs.plot.X.Min, fs.plot.X.Max = x.Min, x.Max
	fs.plot.Y.Min, fs.plot.Y.Max = y.Min, y.Max
	fn()
}
