package kernel

import (
	"fmt"
	"math"
)

// Point3D is a position or direction in model space.
type Point3D struct {
	X, Y, Z float64
}

// Vertex is a mesh vertex with its shading normal.
type Vertex struct {
	Position Point3D
	Normal   Point3D
}

// Face is a polygon given as indices into the mesh's vertex list. The
// winding order determines the outward side.
type Face struct {
	Indices []int
}

// LayerType classifies which physical board layer a mesh represents.
type LayerType int

const (
	EdgeCuts LayerType = iota
	Copper
	Silkscreen
	Soldermask
	Paste
	Drill
)

func (l LayerType) String() string {
	switch l {
	case EdgeCuts:
		return "EdgeCuts"
	case Copper:
		return "Copper"
	case Silkscreen:
		return "Silkscreen"
	case Soldermask:
		return "Soldermask"
	case Paste:
		return "Paste"
	case Drill:
		return "Drill"
	default:
		return fmt.Sprintf("LayerType(%d)", int(l))
	}
}

// Side is the board face a layer belongs to.
type Side int

const (
	Top Side = iota
	Bottom
)

func (s Side) String() string {
	if s == Bottom {
		return "Bottom"
	}
	return "Top"
}

// Mesh is a polygon mesh for one board layer.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
	Layer    LayerType
	Side     Side
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// BoundingBox returns the axis-aligned bounding box of the vertices.
func (m *Mesh) BoundingBox() (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.Vertices {
		p := [3]float64{v.Position.X, v.Position.Y, v.Position.Z}
		for i := range p {
			min[i] = math.Min(min[i], p[i])
			max[i] = math.Max(max[i], p[i])
		}
	}
	return min, max
}

// Validate checks that every face has at least three indices and that all
// indices are in range.
func (m *Mesh) Validate() error {
	for fi, f := range m.Faces {
		if len(f.Indices) < 3 {
			return fmt.Errorf("kernel: face %d has %d vertices", fi, len(f.Indices))
		}
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("kernel: face %d references vertex %d of %d", fi, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// EdgeUseCounts counts how many faces use each undirected edge, keyed by
// the ordered index pair. Edges whose end points coincide are not counted.
// The mesh must pass Validate.
func (m *Mesh) EdgeUseCounts() map[[2]int]int {
	counts := make(map[[2]int]int)
	for _, f := range m.Faces {
		n := len(f.Indices)
		for i := 0; i < n; i++ {
			a, b := f.Indices[i], f.Indices[(i+1)%n]
			if m.Vertices[a].Position == m.Vertices[b].Position {
				continue
			}
			if a > b {
				a, b = b, a
			}
			counts[[2]int{a, b}]++
		}
	}
	return counts
}

// IsClosed reports whether every edge is shared by exactly two faces.
func (m *Mesh) IsClosed() bool {
	if m.Validate() != nil {
		return false
	}
	counts := m.EdgeUseCounts()
	if len(counts) == 0 {
		return false
	}
	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return true
}
