// Package outline assembles the board boundary from a Gerber command
// sequence. Straight moves and draws contribute their end points; arcs are
// tessellated into a fixed number of chords.
package outline

import (
	"errors"

	"github.com/chazu/pcbgen/pkg/gerber"
)

// ErrTooFewPoints is returned when the closed outline has fewer than three
// points.
var ErrTooFewPoints = errors.New("outline: not enough points to form a polygon")

// DefaultArcSegments is the number of chords each arc is split into.
const DefaultArcSegments = 16

// Builder turns commands into a Polygon. The zero value uses
// DefaultArcSegments.
type Builder struct {
	ArcSegments int
}

// Build assembles a polygon with the default Builder.
func Build(cmds []gerber.Command) (Polygon, error) {
	return Builder{}.Build(cmds)
}

// traversal is the state carried while walking the commands.
type traversal struct {
	current gerber.Point
	mode    gerber.InterpolationMode
	start   *gerber.Point
	points  []gerber.Point
}

// Build walks cmds and returns the closed outline. The first Move anchors
// the outline; if there is none, the first emitted point does.
func (b Builder) Build(cmds []gerber.Command) (Polygon, error) {
	segments := b.ArcSegments
	if segments <= 0 {
		segments = DefaultArcSegments
	}

	t := traversal{mode: gerber.Linear}
	for _, c := range cmds {
		switch c := c.(type) {
		case gerber.Move:
			t.current = c.Point
			if t.start == nil {
				p := c.Point
				t.start = &p
			}
			t.points = append(t.points, c.Point)
		case gerber.Draw:
			t.current = c.Point
			t.points = append(t.points, c.Point)
		case gerber.SetInterpolationMode:
			t.mode = c.Mode
		case gerber.ArcDraw:
			t.points = append(t.points, tessellateArc(t.current, c.EndPoint, c.CenterOffset, t.mode, segments)...)
			t.current = c.EndPoint
		}
	}

	if t.start == nil && len(t.points) > 0 {
		p := t.points[0]
		t.start = &p
	}
	if t.start != nil && len(t.points) > 0 && t.points[len(t.points)-1] != *t.start {
		t.points = append(t.points, *t.start)
	}
	if len(t.points) < 3 {
		return Polygon{}, ErrTooFewPoints
	}
	return Polygon{points: t.points}, nil
}
