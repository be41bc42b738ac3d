// Package prism implements kernel.Kernel by straight extrusion: the outline
// is duplicated at z = 0 and z = thickness and the copies are joined by one
// quad per outline edge. The result is exact; no surface sampling is done.
package prism

import (
	"github.com/chazu/pcbgen/pkg/kernel"
	"github.com/chazu/pcbgen/pkg/outline"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

var (
	up   = kernel.Point3D{Z: 1}
	down = kernel.Point3D{Z: -1}
)

// Kernel implements kernel.Kernel with Extrude.
type Kernel struct{}

// New returns a prism kernel.
func New() *Kernel {
	return &Kernel{}
}

// Name returns "prism".
func (k *Kernel) Name() string {
	return "prism"
}

// Extrude never fails; the error is part of the kernel.Kernel contract.
func (k *Kernel) Extrude(p outline.Polygon, thickness float64) (*kernel.Mesh, error) {
	return Extrude(p, thickness), nil
}

// Extrude builds the prism over p. For an N-point polygon the mesh has 2N
// vertices, point k at indices 2k (top) and 2k+1 (bottom), and N+2 faces:
// the top cap, the bottom cap in reverse order, and N side quads
// (top_k, bottom_k, bottom_k+1, top_k+1).
func Extrude(p outline.Polygon, thickness float64) *kernel.Mesh {
	n := p.Len()
	m := &kernel.Mesh{
		Vertices: make([]kernel.Vertex, 0, 2*n),
		Faces:    make([]kernel.Face, 0, n+2),
		Layer:    kernel.EdgeCuts,
	}

	for i := 0; i < n; i++ {
		pt := p.At(i)
		m.Vertices = append(m.Vertices,
			kernel.Vertex{Position: kernel.Point3D{X: pt.X, Y: pt.Y, Z: thickness}, Normal: up},
			kernel.Vertex{Position: kernel.Point3D{X: pt.X, Y: pt.Y, Z: 0}, Normal: down},
		)
	}

	top := make([]int, 0, n)
	for i := 0; i < n; i++ {
		top = append(top, 2*i)
	}
	bottom := make([]int, 0, n)
	for i := n - 1; i >= 0; i-- {
		bottom = append(bottom, 2*i+1)
	}
	m.Faces = append(m.Faces, kernel.Face{Indices: top}, kernel.Face{Indices: bottom})

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Faces = append(m.Faces, kernel.Face{Indices: []int{2 * i, 2*i + 1, 2*j + 1, 2 * j}})
	}
	return m
}
