package sdfx

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/pcbgen/pkg/gerber"
	"github.com/chazu/pcbgen/pkg/outline"
)

func rectangle(t *testing.T, w, h float64) outline.Polygon {
	t.Helper()
	p, err := outline.NewPolygon([]gerber.Point{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h},
	})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return p
}

func TestNewDefaults(t *testing.T) {
	tests := []struct {
		cells int
		want  int
	}{
		{0, DefaultMeshCells},
		{-5, DefaultMeshCells},
		{64, 64},
	}
	for _, tt := range tests {
		if got := New(tt.cells).MeshCells(); got != tt.want {
			t.Errorf("New(%d).MeshCells() = %d, want %d", tt.cells, got, tt.want)
		}
	}
	if New(0).Name() != "sdfx" {
		t.Errorf("Name() = %q", New(0).Name())
	}
}

func TestSolidBounds(t *testing.T) {
	s, err := Solid(rectangle(t, 100, 50), 1.6)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}
	bb := s.BoundingBox()
	const tol = 1e-9
	if math.Abs(bb.Min.Z) > tol || math.Abs(bb.Max.Z-1.6) > tol {
		t.Errorf("z range = [%v, %v], want [0, 1.6]", bb.Min.Z, bb.Max.Z)
	}
	if math.Abs(bb.Min.X) > tol || math.Abs(bb.Max.X-100) > tol {
		t.Errorf("x range = [%v, %v], want [0, 100]", bb.Min.X, bb.Max.X)
	}
}

func TestSolidErrors(t *testing.T) {
	if _, err := Solid(rectangle(t, 10, 10), 0); err == nil {
		t.Error("expected error for zero thickness")
	}

	// Three points, two distinct: valid outline, but no area.
	p, err := outline.NewPolygon([]gerber.Point{{X: 1, Y: 1}, {X: 2, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Solid(p, 1)
	if !errors.Is(err, outline.ErrTooFewPoints) {
		t.Errorf("Solid(degenerate) error = %v, want ErrTooFewPoints", err)
	}
}

func TestExtrudeRectangle(t *testing.T) {
	k := New(40)
	mesh, err := k.Extrude(rectangle(t, 20, 10), 2)
	if err != nil {
		t.Fatalf("Extrude failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() != 3*mesh.FaceCount() {
		t.Fatalf("vertex count %d != 3 * face count %d", mesh.VertexCount(), mesh.FaceCount())
	}
	if err := mesh.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	min, max := mesh.BoundingBox()
	// Marching cubes only approximates the surface; allow one cell of slack.
	cell := 20.0 / 40
	want := [2][3]float64{{0, 0, 0}, {20, 10, 2}}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-want[0][i]) > cell || math.Abs(max[i]-want[1][i]) > cell {
			t.Errorf("axis %d range = [%v, %v], want about [%v, %v]", i, min[i], max[i], want[0][i], want[1][i])
		}
	}
	t.Logf("rectangle triangle count: %d", mesh.FaceCount())
}

func TestExtrudeNormalsMatchFaces(t *testing.T) {
	mesh, err := New(32).Extrude(rectangle(t, 10, 10), 1)
	if err != nil {
		t.Fatal(err)
	}
	for i, f := range mesh.Faces {
		n := mesh.Vertices[f.Indices[0]].Normal
		l := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
		if math.Abs(l-1) > 1e-6 {
			t.Fatalf("face %d normal %+v is not unit length", i, n)
		}
		for _, idx := range f.Indices[1:] {
			if mesh.Vertices[idx].Normal != n {
				t.Fatalf("face %d vertices disagree on normal", i)
			}
		}
	}
}
