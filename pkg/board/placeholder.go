package board

import (
	"math"

	"github.com/chazu/pcbgen/pkg/gerber"
	"github.com/chazu/pcbgen/pkg/kernel"
)

const (
	// SilkscreenOffset is how far silkscreen plates float off the board.
	SilkscreenOffset = 0.01

	// CopperPlaceholderSize and SilkscreenPlaceholderSize are the edge
	// lengths of the plate used for a layer that has no coordinates of its
	// own.
	CopperPlaceholderSize     = 20.0
	SilkscreenPlaceholderSize = 10.0
)

// placeholderSize returns the fallback plate edge length for layer t.
func placeholderSize(t kernel.LayerType) float64 {
	if t == kernel.Silkscreen {
		return SilkscreenPlaceholderSize
	}
	return CopperPlaceholderSize
}

// extent is an axis-aligned rectangle in board coordinates.
type extent struct {
	min, max gerber.Point
}

func (e extent) center() gerber.Point {
	return gerber.Point{X: (e.min.X + e.max.X) / 2, Y: (e.min.Y + e.max.Y) / 2}
}

// artworkExtent returns the bounding rectangle of every coordinate the
// commands visit. ok is false if there are none.
func artworkExtent(cmds []gerber.Command) (e extent, ok bool) {
	e = extent{
		min: gerber.Point{X: math.Inf(1), Y: math.Inf(1)},
		max: gerber.Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	add := func(p gerber.Point) {
		e.min.X = math.Min(e.min.X, p.X)
		e.min.Y = math.Min(e.min.Y, p.Y)
		e.max.X = math.Max(e.max.X, p.X)
		e.max.Y = math.Max(e.max.Y, p.Y)
		ok = true
	}
	for _, c := range cmds {
		switch c := c.(type) {
		case gerber.Move:
			add(c.Point)
		case gerber.Draw:
			add(c.Point)
		case gerber.Flash:
			add(c.Point)
		case gerber.ArcDraw:
			add(c.EndPoint)
		}
	}
	return e, ok
}

// square returns a square of the given edge length centred on c.
func square(c gerber.Point, size float64) extent {
	h := size / 2
	return extent{
		min: gerber.Point{X: c.X - h, Y: c.Y - h},
		max: gerber.Point{X: c.X + h, Y: c.Y + h},
	}
}

// plate builds a single-quad mesh covering e at height z. Top plates face
// up and wind counter-clockwise; bottom plates face down.
func plate(e extent, z float64, r Role) *kernel.Mesh {
	normal := kernel.Point3D{Z: 1}
	if r.Side == kernel.Bottom {
		normal = kernel.Point3D{Z: -1}
	}
	corners := []gerber.Point{
		e.min,
		{X: e.max.X, Y: e.min.Y},
		e.max,
		{X: e.min.X, Y: e.max.Y},
	}
	m := &kernel.Mesh{Layer: r.Type, Side: r.Side}
	for _, c := range corners {
		m.Vertices = append(m.Vertices, kernel.Vertex{
			Position: kernel.Point3D{X: c.X, Y: c.Y, Z: z},
			Normal:   normal,
		})
	}
	if r.Side == kernel.Bottom {
		m.Faces = []kernel.Face{{Indices: []int{3, 2, 1, 0}}}
	} else {
		m.Faces = []kernel.Face{{Indices: []int{0, 1, 2, 3}}}
	}
	return m
}

// layerHeight returns the z a placeholder for r sits at on a board of the
// given thickness.
func layerHeight(r Role, thickness float64) float64 {
	switch {
	case r.Type == kernel.Silkscreen && r.Side == kernel.Top:
		return thickness + SilkscreenOffset
	case r.Type == kernel.Silkscreen:
		return -SilkscreenOffset
	case r.Side == kernel.Top:
		return thickness
	default:
		return 0
	}
}
