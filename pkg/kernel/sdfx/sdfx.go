// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
//
// The outline becomes a 2-D polygon SDF, is extruded and then sampled with
// marching cubes, so the output is a triangle soup approximating the prism.
// Use it when a downstream tool wants the same tessellation sdfx produces
// for other parts; the prism kernel is exact and much faster.
package sdfx

import (
	"fmt"
	"math"

	"github.com/chazu/pcbgen/pkg/kernel"
	"github.com/chazu/pcbgen/pkg/outline"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface check.
var _ kernel.Kernel = (*SdfxKernel)(nil)

// DefaultMeshCells controls marching cubes tessellation resolution.
const DefaultMeshCells = 200

// SdfxKernel implements kernel.Kernel using sdfx.
type SdfxKernel struct {
	meshCells int
}

// New returns a new SdfxKernel sampling the longest bounding box axis with
// meshCells cells. Non-positive values select DefaultMeshCells.
func New(meshCells int) *SdfxKernel {
	if meshCells <= 0 {
		meshCells = DefaultMeshCells
	}
	return &SdfxKernel{meshCells: meshCells}
}

// Name returns "sdfx".
func (k *SdfxKernel) Name() string {
	return "sdfx"
}

// MeshCells returns the marching cubes resolution.
func (k *SdfxKernel) MeshCells() int {
	return k.meshCells
}

// Solid returns the SDF of p extruded from z = 0 to z = thickness.
// sdf.Extrude3D centers the solid on z = 0, so it is lifted by half the
// thickness.
func Solid(p outline.Polygon, thickness float64) (sdf.SDF3, error) {
	if thickness <= 0 {
		return nil, fmt.Errorf("sdfx: thickness must be positive, got %g", thickness)
	}
	ring := p.Ring()
	if len(ring) < 3 {
		return nil, fmt.Errorf("sdfx: outline has %d distinct points: %w", len(ring), outline.ErrTooFewPoints)
	}
	verts := make([]v2.Vec, len(ring))
	for i, pt := range ring {
		verts[i] = v2.Vec{X: pt.X, Y: pt.Y}
	}
	s2, err := sdf.Polygon2D(verts)
	if err != nil {
		return nil, fmt.Errorf("sdfx: polygon: %w", err)
	}
	s3 := sdf.Extrude3D(s2, thickness)
	return sdf.Transform3D(s3, sdf.Translate3d(v3.Vec{Z: thickness / 2})), nil
}

// Extrude renders the extruded outline into a triangle mesh using marching
// cubes. Each triangle gets its own three vertices carrying the face normal.
func (k *SdfxKernel) Extrude(p outline.Polygon, thickness float64) (*kernel.Mesh, error) {
	s, err := Solid(p, thickness)
	if err != nil {
		return nil, err
	}

	renderer := render.NewMarchingCubesUniform(k.meshCells)
	triangles := render.ToTriangles(s, renderer)

	m := &kernel.Mesh{
		Vertices: make([]kernel.Vertex, 0, len(triangles)*3),
		Faces:    make([]kernel.Face, 0, len(triangles)),
		Layer:    kernel.EdgeCuts,
	}
	for _, tri := range triangles {
		n := tri.Normal()
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsNaN(n.Z) {
			// Degenerate sliver from the marching cubes pass.
			continue
		}
		normal := kernel.Point3D{X: n.X, Y: n.Y, Z: n.Z}

		base := len(m.Vertices)
		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Vertices = append(m.Vertices, kernel.Vertex{
				Position: kernel.Point3D{X: v.X, Y: v.Y, Z: v.Z},
				Normal:   normal,
			})
		}
		m.Faces = append(m.Faces, kernel.Face{Indices: []int{base, base + 1, base + 2}})
	}
	return m, nil
}
