package outline

import (
	"math"

	"github.com/chazu/pcbgen/pkg/gerber"
)

// Polygon is a closed outline: the first and last points are equal and
// there are at least three points. It is never modified after Build.
type Polygon struct {
	points []gerber.Point
}

// NewPolygon closes pts if needed and returns it as a Polygon.
func NewPolygon(pts []gerber.Point) (Polygon, error) {
	out := make([]gerber.Point, len(pts), len(pts)+1)
	copy(out, pts)
	if len(out) > 0 && out[len(out)-1] != out[0] {
		out = append(out, out[0])
	}
	if len(out) < 3 {
		return Polygon{}, ErrTooFewPoints
	}
	return Polygon{points: out}, nil
}

// Len returns the number of points, including the closing point.
func (p Polygon) Len() int {
	return len(p.points)
}

// At returns point i.
func (p Polygon) At(i int) gerber.Point {
	return p.points[i]
}

// Points returns a copy of the points.
func (p Polygon) Points() []gerber.Point {
	out := make([]gerber.Point, len(p.points))
	copy(out, p.points)
	return out
}

// Ring returns the points without the closing duplicate and without
// consecutive repeats.
func (p Polygon) Ring() []gerber.Point {
	var out []gerber.Point
	for i, pt := range p.points {
		if i > 0 && pt == out[len(out)-1] {
			continue
		}
		out = append(out, pt)
	}
	if len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// Area returns the signed shoelace area; positive for counter-clockwise.
func (p Polygon) Area() float64 {
	var a float64
	for i := 0; i+1 < len(p.points); i++ {
		a += p.points[i].X*p.points[i+1].Y - p.points[i+1].X*p.points[i].Y
	}
	return a / 2
}

// Bounds returns the axis-aligned bounding box.
func (p Polygon) Bounds() (min, max gerber.Point) {
	min = gerber.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = gerber.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, pt := range p.points {
		min.X = math.Min(min.X, pt.X)
		min.Y = math.Min(min.Y, pt.Y)
		max.X = math.Max(max.X, pt.X)
		max.Y = math.Max(max.Y, pt.Y)
	}
	return min, max
}
