package nomogram

import "math"

// Point is a point in data or log space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Box is an axis-aligned rectangle.
type Box struct {
	X, Y Limits
}

// Segment is a line clipped to a Box. Valid is false when the line misses
// the box or only touches it.
type Segment struct {
	Start, End Point
	Valid      bool
}

// ClipLines clips the lines y = m·x + c for every c in cs to box. Start is
// always the end with the smaller x.
func ClipLines(m float64, cs []float64, box Box) []Segment {
	out := make([]Segment, len(cs))
	for i, c := range cs {
		out[i] = clipLine(m, c, box)
	}
	return out
}

func clipLine(m, c float64, box Box) Segment {
	if m == 0 {
		if c < box.Y.Min || c > box.Y.Max || !(box.X.Max-box.X.Min > Eps) {
			return Segment{}
		}
		return Segment{Start: Point{box.X.Min, c}, End: Point{box.X.Max, c}, Valid: true}
	}
	xFromYMin := (box.Y.Min - c) / m
	xFromYMax := (box.Y.Max - c) / m
	xStart := math.Max(box.X.Min, math.Min(xFromYMin, xFromYMax))
	xEnd := math.Min(box.X.Max, math.Max(xFromYMin, xFromYMax))
	if !(xEnd-xStart > Eps) {
		return Segment{}
	}
	return Segment{
		Start: Point{X: xStart, Y: m*xStart + c},
		End:   Point{X: xEnd, Y: m*xEnd + c},
		Valid: true,
	}
}
