package nomogram

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Which selects major grid lines, minor grid lines or both.
type Which int

const (
	Major Which = 1 << iota
	Minor
	Both = Major | Minor
)

// Scale is the scaling of a main axis.
type Scale int

const (
	LogScale Scale = iota
	LinearScale
)

// curveSamples is the number of points used to draw an iso-line when the
// axes are not log-log and the line is a curve.
const curveSamples = 100

// GridStyle describes how grid lines are stroked. Alpha in (0, 1) makes
// the colour translucent; any other value leaves it unchanged.
type GridStyle struct {
	Color  color.Color
	Width  vg.Length
	Dashes []vg.Length
	Alpha  float64
}

// LineStyle converts s into a gonum line style.
func (s GridStyle) LineStyle() draw.LineStyle {
	c := s.Color
	if c == nil {
		c = color.Black
	}
	if s.Alpha > 0 && s.Alpha < 1 {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		n.A = uint8(math.Round(float64(n.A) * s.Alpha))
		c = n
	}
	return draw.LineStyle{Color: c, Width: s.Width, Dashes: s.Dashes}
}

// GridOption updates a GridStyle.
type GridOption func(*GridStyle)

func WithColor(c color.Color) GridOption {
	return func(s *GridStyle) { s.Color = c }
}

func WithLineWidth(w vg.Length) GridOption {
	return func(s *GridStyle) { s.Width = w }
}

// WithDashes sets the dash pattern; no arguments give a solid line.
func WithDashes(d ...vg.Length) GridOption {
	return func(s *GridStyle) { s.Dashes = d }
}

func WithAlpha(a float64) GridOption {
	return func(s *GridStyle) { s.Alpha = a }
}

// GridInfo is the visibility and style of one family of grid lines.
type GridInfo struct {
	Visible bool
	Style   GridStyle
}

func defaultOrderGrid() GridInfo {
	return GridInfo{
		Style: GridStyle{
			Color:  color.Gray{Y: 191},
			Width:  vg.Points(0.5),
			Dashes: []vg.Length{vg.Points(1), vg.Points(1.65)},
			Alpha:  1,
		},
	}
}

// OrderAxis is a secondary axis drawn as diagonal grid lines of constant
// Y = v/(2πf)^Order across the frequency/velocity plane.
type OrderAxis struct {
	Order        Order
	Visible      bool
	MajorLocator Locator
	MinorLocator Locator
	Formatter    Formatter

	major, minor GridInfo
}

// NewOrderAxis returns an axis with log locators, the general formatter and
// both grids hidden.
func NewOrderAxis(order Order) *OrderAxis {
	return &OrderAxis{
		Order:        order,
		Visible:      true,
		MajorLocator: NewLogLocator(15),
		MinorLocator: NewMinorLogLocator(),
		Formatter:    GeneralFormatter,
		major:        defaultOrderGrid(),
		minor:        defaultOrderGrid(),
	}
}

// Transform returns the velocity to Y transform of the axis.
func (a *OrderAxis) Transform() SpecTransform {
	return SpecTransform{Order: a.Order}
}

// Grid shows or hides the grid lines selected by which and applies opts to
// their style.
func (a *OrderAxis) Grid(visible bool, which Which, opts ...GridOption) {
	for _, gi := range a.infos(which) {
		gi.Visible = visible
		for _, opt := range opts {
			opt(&gi.Style)
		}
	}
}

// GridInfo returns a copy of the grid state for Major or Minor.
func (a *OrderAxis) GridInfo(which Which) GridInfo {
	if which == Minor {
		return a.minor
	}
	return a.major
}

func (a *OrderAxis) infos(which Which) []*GridInfo {
	var out []*GridInfo
	if which&Major != 0 {
		out = append(out, &a.major)
	}
	if which&Minor != 0 {
		out = append(out, &a.minor)
	}
	return out
}

// Limits returns the range of the axis quantity over the view spanned by
// the frequency limits x and velocity limits y.
func (a *OrderAxis) Limits(x, y Limits) Limits {
	x, y = x.Sorted(), y.Sorted()
	var lo, hi Point
	if a.Order < 0 {
		lo, hi = Point{x.Min, y.Min}, Point{x.Max, y.Max}
	} else {
		lo, hi = Point{x.Max, y.Min}, Point{x.Min, y.Max}
	}
	return Limits{
		Min: a.Order.FromVelocity(lo.X, lo.Y),
		Max: a.Order.FromVelocity(hi.X, hi.Y),
	}
}

// GridLine is one iso-line of an order axis, clipped to the view.
type GridLine struct {
	// Value of the axis quantity along the line.
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`

	// Start and End in data coordinates; Start has the lower frequency.
	Start Point `json:"start"`
	End   Point `json:"end"`

	// Anchor is the labelled end, Toward the other one.
	Anchor Point `json:"anchor"`
	Toward Point `json:"-"`

	// Align is the horizontal label alignment; AtTop marks labels on the
	// upper edge of the view, which are pushed further out.
	Align draw.XAlignment `json:"-"`
	AtTop bool            `json:"at_top,omitempty"`

	// Path is the polyline to stroke, in data coordinates.
	Path []Point `json:"-"`
}

// GridLines computes the visible iso-lines for Major or Minor ticks. Only
// major lines are labelled.
func (a *OrderAxis) GridLines(which Which, x, y Limits, xScale, yScale Scale) []GridLine {
	loc := a.MajorLocator
	if which == Minor {
		loc = a.MinorLocator
	}
	if loc == nil {
		return nil
	}

	logX, logY := x.safeLog(), y.safeLog()
	lim := a.Limits(logX.pow10(), logY.pow10())
	ticks := loc.TickValues(lim.Min, lim.Max)

	// log v = order·log f + c
	cs := make([]float64, len(ticks))
	for i, t := range ticks {
		cs[i] = a.Order.LogVelocity(1, t)
	}
	segs := ClipLines(float64(a.Order), cs, Box{X: logX, Y: logY})

	lines := make([]GridLine, 0, len(segs))
	for i, s := range segs {
		if !s.Valid {
			continue
		}
		gl := GridLine{
			Value: ticks[i],
			Start: pow10(s.Start),
			End:   pow10(s.End),
			Path:  linePath(s.Start, s.End, xScale == LogScale && yScale == LogScale),
			Align: draw.XCenter,
		}
		anchor, toward := s.End, s.Start
		if a.Order < 0 {
			anchor, toward = s.Start, s.End
		}
		gl.Anchor, gl.Toward = pow10(anchor), pow10(toward)

		left := math.Abs(anchor.X-logX.Min) < Eps
		right := math.Abs(anchor.X-logX.Max) < Eps
		switch {
		case left:
			gl.Align = draw.XLeft
		case right:
			gl.Align = draw.XRight
		case math.Abs(anchor.Y-logY.Max) < Eps:
			gl.AtTop = true
			gl.Align = draw.XRight
			if a.Order < 0 {
				gl.Align = draw.XLeft
			}
		}

		if which == Major {
			if a.Formatter != nil {
				gl.Label = a.Formatter.Format(gl.Value)
			} else {
				gl.Label = GeneralFormatter.Format(gl.Value)
			}
		}
		lines = append(lines, gl)
	}
	return lines
}

func pow10(p Point) Point {
	return Point{X: math.Pow(10, p.X), Y: math.Pow(10, p.Y)}
}

// linePath returns the stroke path of a log-space segment in data
// coordinates. On log-log axes the segment is straight; otherwise it is
// sampled.
func linePath(p1, p2 Point, logLog bool) []Point {
	if logLog {
		return []Point{pow10(p1), pow10(p2)}
	}
	path := make([]Point, curveSamples)
	for i := range path {
		t := float64(i) / float64(curveSamples-1)
		path[i] = pow10(Point{
			X: p1.X + t*(p2.X-p1.X),
			Y: p1.Y + t*(p2.Y-p1.Y),
		})
	}
	return path
}
