package kernel

import (
	"math"

	"github.com/osuushi/triangulate"
)

// Triangles splits every face into triangles that keep the face's winding.
// Faces are projected onto the plane of their dominant normal axis; rings
// longer than a quad are handed to the triangulate package so concave board
// outlines split correctly. Repeated positions are merged and zero-area
// triangles are dropped.
func (m *Mesh) Triangles() [][3]int {
	var out [][3]int
	for _, f := range m.Faces {
		out = append(out, m.triangulateFace(f)...)
	}
	return out
}

// FaceNormal returns the unit Newell normal of face f, or the zero vector
// for a degenerate face.
func (m *Mesh) FaceNormal(f Face) Point3D {
	var n Point3D
	k := len(f.Indices)
	for i := 0; i < k; i++ {
		a := m.Vertices[f.Indices[i]].Position
		b := m.Vertices[f.Indices[(i+1)%k]].Position
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	l := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if l == 0 {
		return Point3D{}
	}
	return Point3D{X: n.X / l, Y: n.Y / l, Z: n.Z / l}
}

func cross2(o, a, b triangulate.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// mergeRepeats drops indices whose position equals the previous one,
// including a last index that repeats the first.
func (m *Mesh) mergeRepeats(idx []int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if len(out) > 0 && m.Vertices[out[len(out)-1]].Position == m.Vertices[i].Position {
			continue
		}
		out = append(out, i)
	}
	for len(out) > 1 && m.Vertices[out[len(out)-1]].Position == m.Vertices[out[0]].Position {
		out = out[:len(out)-1]
	}
	return out
}

// project drops the dominant axis of n, keeping the projection's handedness
// so the sign of the 2-D area matches the 3-D winding.
func (m *Mesh) project(idx []int, n Point3D) []triangulate.Point {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	out := make([]triangulate.Point, len(idx))
	for k, i := range idx {
		p := m.Vertices[i].Position
		switch {
		case az >= ax && az >= ay:
			out[k] = triangulate.Point{X: p.X, Y: p.Y}
		case ax >= ay:
			out[k] = triangulate.Point{X: p.Y, Y: p.Z}
		default:
			out[k] = triangulate.Point{X: p.Z, Y: p.X}
		}
	}
	return out
}

func (m *Mesh) triangulateFace(f Face) [][3]int {
	idx := m.mergeRepeats(f.Indices)
	if len(idx) < 3 {
		return nil
	}
	n := m.FaceNormal(Face{Indices: idx})
	if n == (Point3D{}) {
		return nil
	}
	proj := m.project(idx, n)

	var area float64
	for i := range proj {
		a, b := proj[i], proj[(i+1)%len(proj)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area == 0 {
		return nil
	}

	// Corner positions into idx, in face order.
	var corners [][3]int
	if len(idx) <= 4 {
		corners = [][3]int{{0, 1, 2}}
		if len(idx) == 4 {
			corners = append(corners, [3]int{0, 2, 3})
		}
	} else {
		corners = splitRing(proj, area < 0)
	}

	tris := make([][3]int, 0, len(corners))
	for _, c := range corners {
		if cross2(proj[c[0]], proj[c[1]], proj[c[2]]) == 0 {
			continue
		}
		tris = append(tris, [3]int{idx[c[0]], idx[c[1]], idx[c[2]]})
	}
	return tris
}

// splitRing triangulates the projected ring and returns each triangle as
// positions into proj, wound the same way as the ring. The triangulate
// package expects counter-clockwise input, so a clockwise ring is passed
// reversed and its triangles flipped back. If the ring is rejected it is
// split as a fan.
func splitRing(proj []triangulate.Point, clockwise bool) [][3]int {
	pos := make(map[triangulate.Point]int, len(proj))
	pts := make([]*triangulate.Point, len(proj))
	for i := range proj {
		k := i
		if clockwise {
			k = len(proj) - 1 - i
		}
		p := proj[k]
		if _, ok := pos[p]; !ok {
			pos[p] = k
		}
		pts[i] = &p
	}

	result, err := triangulate.Triangulate(pts)
	if err != nil {
		return fan(len(proj))
	}

	out := make([][3]int, 0, len(result))
	for _, t := range result {
		a, okA := pos[*t.A]
		b, okB := pos[*t.B]
		c, okC := pos[*t.C]
		if !okA || !okB || !okC {
			return fan(len(proj))
		}
		if clockwise {
			a, c = c, a
		}
		out = append(out, [3]int{a, b, c})
	}
	return out
}

func fan(n int) [][3]int {
	out := make([][3]int, 0, n-2)
	for i := 1; i+1 < n; i++ {
		out = append(out, [3]int{0, i, i + 1})
	}
	return out
}
