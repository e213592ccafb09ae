package nomogram

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	labelOffset   = vg.Length(10)
	labelFontSize = 0.8
	zoneSamples   = 50
)

// isoGrid draws the diagonal grids of the order axes. It implements
// plot.Plotter but not plot.DataRanger, so it never affects autoscaling.
type isoGrid struct {
	axes           []*OrderAxis
	xScale, yScale Scale
}

func (g *isoGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x := Limits{Min: plt.X.Min, Max: plt.X.Max}
	y := Limits{Min: plt.Y.Min, Max: plt.Y.Max}

	toCanvas := func(p Point) vg.Point {
		return vg.Point{X: trX(p.X), Y: trY(p.Y)}
	}

	for _, ax := range g.axes {
		if !ax.Visible {
			continue
		}
		for _, which := range []Which{Major, Minor} {
			gi := ax.GridInfo(which)
			if !gi.Visible {
				continue
			}
			lines := ax.GridLines(which, x, y, g.xScale, g.yScale)
			if which == Major {
				g.drawLabels(&c, plt, ax, lines, toCanvas)
			}
			sty := gi.Style.LineStyle()
			for _, l := range lines {
				pts := make([]vg.Point, len(l.Path))
				for i, p := range l.Path {
					pts[i] = toCanvas(p)
				}
				c.StrokeLines(sty, c.ClipLinesXY(pts)...)
			}
		}
	}
}

// drawLabels writes the value of every major line next to its anchor,
// rotated along the line, with a short tick continuing the line.
func (g *isoGrid) drawLabels(c *draw.Canvas, plt *plot.Plot, ax *OrderAxis, lines []GridLine, toCanvas func(Point) vg.Point) {
	sty := plt.Y.Tick.Label
	sty.Font.Size = sty.Font.Size * labelFontSize
	sty.YAlign = draw.YBottom
	tick := draw.LineStyle{Color: color.Black, Width: vg.Points(1.2)}

	for _, l := range lines {
		if l.Label == "" {
			continue
		}
		// The direction is measured on the canvas between the anchor and a
		// point 1% along the line in log space.
		la, lt := logPoint(l.Anchor), logPoint(l.Toward)
		near := Point{X: la.X + 0.01*(lt.X-la.X), Y: la.Y + 0.01*(lt.Y-la.Y)}
		a := toCanvas(l.Anchor)
		b := toCanvas(pow10(near))
		dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)

		angle := math.Atan2(dy, dx)
		if angle > math.Pi/2 {
			angle -= math.Pi
		} else if angle < -math.Pi/2 {
			angle += math.Pi
		}

		norm := math.Hypot(dx, dy)
		if norm == 0 {
			norm = 1
		}
		dir := vg.Point{X: vg.Length(dx / norm), Y: vg.Length(dy / norm)}
		offset := dir.Scale(labelOffset)
		textOffset := offset
		if l.AtTop {
			textOffset = offset.Scale(2)
		}

		ts := sty
		ts.Rotation = angle
		ts.XAlign = l.Align
		c.FillText(ts, a.Add(textOffset), l.Label)
		c.StrokeLines(tick, []vg.Point{a, a.Add(offset.Scale(1 / 1.2))})
	}
}

func logPoint(p Point) Point {
	return Point{X: math.Log10(p.X), Y: math.Log10(p.Y)}
}

// axisGrid draws the main frequency and velocity grids. Ticks without a
// label are treated as minor.
type axisGrid struct {
	x, y struct{ major, minor GridInfo }
}

func newAxisGrid() *axisGrid {
	g := &axisGrid{}
	def := GridInfo{Style: GridStyle{Color: color.Gray{Y: 176}, Width: vg.Points(0.8), Alpha: 1}}
	g.x.major, g.x.minor = def, def
	g.y.major, g.y.minor = def, def
	return g
}

func (g *axisGrid) set(axis Axis, which Which, visible bool, opts []GridOption) {
	var infos []*GridInfo
	if axis&AxisX != 0 {
		if which&Major != 0 {
			infos = append(infos, &g.x.major)
		}
		if which&Minor != 0 {
			infos = append(infos, &g.x.minor)
		}
	}
	if axis&AxisY != 0 {
		if which&Major != 0 {
			infos = append(infos, &g.y.major)
		}
		if which&Minor != 0 {
			infos = append(infos, &g.y.minor)
		}
	}
	for _, gi := range infos {
		gi.Visible = visible
		for _, opt := range opts {
			opt(&gi.Style)
		}
	}
}

func (g *axisGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x := Limits{Min: plt.X.Min, Max: plt.X.Max}
	for _, t := range plt.X.Tick.Marker.Ticks(x.Min, x.Max) {
		gi := g.x.major
		if t.IsMinor() {
			gi = g.x.minor
		}
		if !gi.Visible || !x.Contains(t.Value) {
			continue
		}
		px := trX(t.Value)
		c.StrokeLine2(gi.Style.LineStyle(), px, c.Min.Y, px, c.Max.Y)
	}
	y := Limits{Min: plt.Y.Min, Max: plt.Y.Max}
	for _, t := range plt.Y.Tick.Marker.Ticks(y.Min, y.Max) {
		gi := g.y.major
		if t.IsMinor() {
			gi = g.y.minor
		}
		if !gi.Visible || !y.Contains(t.Value) {
			continue
		}
		py := trY(t.Value)
		c.StrokeLine2(gi.Style.LineStyle(), c.Min.X, py, c.Max.X, py)
	}
}

// zone fills the region where a quantity of the given order exceeds
// threshold, up to the top of the view.
type zone struct {
	order     Order
	threshold float64
	color     color.Color
}

func (z *zone) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	if plt.X.Max <= 0 || plt.X.Min >= plt.X.Max {
		return
	}
	// A linear frequency axis may start at or below zero
	x := Limits{Min: plt.X.Min, Max: plt.X.Max}.safeLog().pow10()
	fs := floats.LogSpan(make([]float64, zoneSamples), x.Min, x.Max)
	top := plt.Y.Max

	pts := make([]vg.Point, 0, 2*len(fs))
	for _, f := range fs {
		v := math.Min(z.order.Velocity(f, z.threshold), top)
		pts = append(pts, vg.Point{X: trX(f), Y: trY(v)})
	}
	for i := len(fs) - 1; i >= 0; i-- {
		pts = append(pts, vg.Point{X: trX(fs[i]), Y: trY(top)})
	}
	c.FillPolygon(z.color, c.ClipPolygonXY(pts))
}
