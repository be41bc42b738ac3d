package outline

import (
	"math"

	"github.com/chazu/pcbgen/pkg/gerber"
)

// sweepNormalizers forces the raw angular delta of an arc into the range
// its direction allows: clockwise sweeps are <= 0, counter-clockwise >= 0.
// Modes without an entry leave the delta as computed.
var sweepNormalizers = map[gerber.InterpolationMode]func(float64) float64{
	gerber.ClockwiseArc:        nonPositive,
	gerber.CounterClockwiseArc: nonNegative,
}

func nonPositive(d float64) float64 {
	if d > 0 {
		d -= 2 * math.Pi
	}
	return d
}

func nonNegative(d float64) float64 {
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// sweep returns the signed angle swept from start to end around center.
func sweep(start, end, center gerber.Point, mode gerber.InterpolationMode) (startAngle, delta float64) {
	s := start.Sub(center)
	e := end.Sub(center)
	startAngle = math.Atan2(s.Y, s.X)
	delta = math.Atan2(e.Y, e.X) - startAngle
	if norm, ok := sweepNormalizers[mode]; ok {
		delta = norm(delta)
	}
	return startAngle, delta
}

// tessellateArc returns segments points along the arc from start to end,
// excluding start and ending on the circle at the end angle.
func tessellateArc(start, end, offset gerber.Point, mode gerber.InterpolationMode, segments int) []gerber.Point {
	center := start.Add(offset)
	radius := math.Hypot(start.X-center.X, start.Y-center.Y)
	startAngle, delta := sweep(start, end, center, mode)

	pts := make([]gerber.Point, 0, segments)
	for k := 1; k <= segments; k++ {
		a := startAngle + delta*float64(k)/float64(segments)
		pts = append(pts, gerber.Point{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		})
	}
	return pts
}
