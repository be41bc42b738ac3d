package kernel

import (
	"math"
	"testing"

	"github.com/chazu/pcbgen/pkg/gerber"
	"github.com/chazu/pcbgen/pkg/outline"
)

func vertices(pts ...Point3D) []Vertex {
	out := make([]Vertex, len(pts))
	for i, p := range pts {
		out[i] = Vertex{Position: p}
	}
	return out
}

// unitCube is a closed cube with outward-wound quads.
func unitCube() *Mesh {
	return &Mesh{
		Vertices: vertices(
			Point3D{0, 0, 0}, Point3D{1, 0, 0}, Point3D{1, 1, 0}, Point3D{0, 1, 0},
			Point3D{0, 0, 1}, Point3D{1, 0, 1}, Point3D{1, 1, 1}, Point3D{0, 1, 1},
		),
		Faces: []Face{
			{Indices: []int{0, 3, 2, 1}},
			{Indices: []int{4, 5, 6, 7}},
			{Indices: []int{0, 1, 5, 4}},
			{Indices: []int{1, 2, 6, 5}},
			{Indices: []int{2, 3, 7, 6}},
			{Indices: []int{3, 0, 4, 7}},
		},
	}
}

// --- Mesh helper method tests ---

func TestMeshCounts(t *testing.T) {
	tests := []struct {
		name      string
		mesh      *Mesh
		wantVerts int
		wantFaces int
		wantEmpty bool
	}{
		{"empty", &Mesh{}, 0, 0, true},
		{"one vertex", &Mesh{Vertices: vertices(Point3D{1, 2, 3})}, 1, 0, false},
		{"cube", unitCube(), 8, 6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.VertexCount(); got != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVerts)
			}
			if got := tt.mesh.FaceCount(); got != tt.wantFaces {
				t.Errorf("FaceCount() = %d, want %d", got, tt.wantFaces)
			}
			if got := tt.mesh.IsEmpty(); got != tt.wantEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.wantEmpty)
			}
		})
	}
}

func TestMeshBoundingBox(t *testing.T) {
	m := &Mesh{Vertices: vertices(
		Point3D{-1, 2, 0.5},
		Point3D{4, -3, 1.6},
		Point3D{0, 0, 0},
	)}
	min, max := m.BoundingBox()
	if min != [3]float64{-1, -3, 0} {
		t.Errorf("min = %v, want [-1 -3 0]", min)
	}
	if max != [3]float64{4, 2, 1.6} {
		t.Errorf("max = %v, want [4 2 1.6]", max)
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		mesh    *Mesh
		wantErr bool
	}{
		{"empty", &Mesh{}, false},
		{"cube", unitCube(), false},
		{"short face", &Mesh{
			Vertices: vertices(Point3D{}, Point3D{X: 1}),
			Faces:    []Face{{Indices: []int{0, 1}}},
		}, true},
		{"index out of range", &Mesh{
			Vertices: vertices(Point3D{}, Point3D{X: 1}, Point3D{Y: 1}),
			Faces:    []Face{{Indices: []int{0, 1, 3}}},
		}, true},
		{"negative index", &Mesh{
			Vertices: vertices(Point3D{}, Point3D{X: 1}, Point3D{Y: 1}),
			Faces:    []Face{{Indices: []int{-1, 1, 2}}},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMeshIsClosed(t *testing.T) {
	if !unitCube().IsClosed() {
		t.Error("cube should be closed")
	}

	open := unitCube()
	open.Faces = open.Faces[1:]
	if open.IsClosed() {
		t.Error("cube without its bottom should not be closed")
	}

	if (&Mesh{}).IsClosed() {
		t.Error("empty mesh should not be closed")
	}

	bad := unitCube()
	bad.Faces[0].Indices[0] = 42
	if bad.IsClosed() {
		t.Error("invalid mesh should not be closed")
	}
}

func TestFaceNormal(t *testing.T) {
	m := unitCube()
	want := []Point3D{
		{0, 0, -1}, {0, 0, 1}, {0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0},
	}
	for i, f := range m.Faces {
		if got := m.FaceNormal(f); got != want[i] {
			t.Errorf("face %d normal = %+v, want %+v", i, got, want[i])
		}
	}

	degenerate := &Mesh{Vertices: vertices(Point3D{}, Point3D{X: 1}, Point3D{X: 2})}
	if got := degenerate.FaceNormal(Face{Indices: []int{0, 1, 2}}); got != (Point3D{}) {
		t.Errorf("collinear face normal = %+v, want zero", got)
	}
}

// triangleArea returns the signed area of tri projected onto XY.
func triangleArea(m *Mesh, tri [3]int) float64 {
	a, b, c := m.Vertices[tri[0]].Position, m.Vertices[tri[1]].Position, m.Vertices[tri[2]].Position
	return ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)) / 2
}

func TestTrianglesConcave(t *testing.T) {
	// L-shaped board, counter-clockwise, area 75.
	m := &Mesh{
		Vertices: vertices(
			Point3D{0, 0, 0}, Point3D{10, 0, 0}, Point3D{10, 5, 0},
			Point3D{5, 5, 0}, Point3D{5, 10, 0}, Point3D{0, 10, 0},
		),
		Faces: []Face{{Indices: []int{0, 1, 2, 3, 4, 5}}},
	}
	tris := m.Triangles()
	if len(tris) != 4 {
		t.Fatalf("got %d triangles, want 4", len(tris))
	}
	var total float64
	for _, tri := range tris {
		a := triangleArea(m, tri)
		if a <= 0 {
			t.Errorf("triangle %v has area %v, want positive (winding kept)", tri, a)
		}
		total += a
	}
	if math.Abs(total-75) > 1e-9 {
		t.Errorf("total area = %v, want 75", total)
	}
}

func TestTrianglesConcaveClockwise(t *testing.T) {
	// The L-shape wound the other way, as a bottom cap is.
	m := &Mesh{
		Vertices: vertices(
			Point3D{0, 0, 0}, Point3D{0, 10, 0}, Point3D{5, 10, 0},
			Point3D{5, 5, 0}, Point3D{10, 5, 0}, Point3D{10, 0, 0},
		),
		Faces: []Face{{Indices: []int{0, 1, 2, 3, 4, 5}}},
	}
	tris := m.Triangles()
	if len(tris) != 4 {
		t.Fatalf("got %d triangles, want 4", len(tris))
	}
	var total float64
	for _, tri := range tris {
		a := triangleArea(m, tri)
		if a >= 0 {
			t.Errorf("triangle %v has area %v, want negative (winding kept)", tri, a)
		}
		total += a
	}
	if math.Abs(total+75) > 1e-9 {
		t.Errorf("total area = %v, want -75", total)
	}
}

func TestTrianglesDropsDegenerate(t *testing.T) {
	m := &Mesh{
		Vertices: vertices(
			Point3D{0, 0, 0}, Point3D{1, 0, 0}, Point3D{2, 0, 0},
			Point3D{2, 2, 0}, Point3D{0, 2, 0}, Point3D{0, 0, 0},
		),
		Faces: []Face{
			// Square with a collinear midpoint and a closing repeat.
			{Indices: []int{0, 1, 2, 3, 4, 5}},
			// Zero-area sliver.
			{Indices: []int{0, 1, 2}},
		},
	}
	tris := m.Triangles()
	if len(tris) != 2 && len(tris) != 3 {
		t.Fatalf("got %d triangles, want 2 or 3", len(tris))
	}
	var total float64
	for _, tri := range tris {
		a := triangleArea(m, tri)
		if a == 0 {
			t.Errorf("zero-area triangle %v emitted", tri)
		}
		total += a
	}
	if math.Abs(total-4) > 1e-9 {
		t.Errorf("total area = %v, want 4", total)
	}
}

func TestTrianglesVerticalFace(t *testing.T) {
	m := unitCube()
	tris := m.Triangles()
	if len(tris) != 12 {
		t.Fatalf("cube triangulates into %d triangles, want 12", len(tris))
	}
	for _, tri := range tris {
		f := Face{Indices: tri[:]}
		n := m.FaceNormal(f)
		if n == (Point3D{}) {
			t.Errorf("triangle %v is degenerate", tri)
		}
	}
	// Every triangle of face 3 (x = 1) should still face +x.
	for _, tri := range m.triangulateFace(m.Faces[3]) {
		if n := m.FaceNormal(Face{Indices: tri[:]}); n != (Point3D{X: 1}) {
			t.Errorf("triangle %v normal = %+v, want +x", tri, n)
		}
	}
}

func TestLayerAndSideStrings(t *testing.T) {
	layers := map[LayerType]string{
		EdgeCuts:      "EdgeCuts",
		Copper:        "Copper",
		Silkscreen:    "Silkscreen",
		Soldermask:    "Soldermask",
		Paste:         "Paste",
		Drill:         "Drill",
		LayerType(99): "LayerType(99)",
	}
	for l, want := range layers {
		if got := l.String(); got != want {
			t.Errorf("LayerType(%d).String() = %q, want %q", int(l), got, want)
		}
	}
	if Top.String() != "Top" || Bottom.String() != "Bottom" {
		t.Errorf("Side strings = %q, %q", Top, Bottom)
	}
}

// --- Compile-time interface check with a stub kernel ---

// stubKernel is a minimal Kernel implementation that proves the interface
// is satisfiable.
type stubKernel struct{}

func (k *stubKernel) Name() string { return "stub" }

func (k *stubKernel) Extrude(_ outline.Polygon, _ float64) (*Mesh, error) {
	return &Mesh{}, nil
}

var _ Kernel = (*stubKernel)(nil)

func TestStubKernelExtrude(t *testing.T) {
	var k Kernel = &stubKernel{}
	p, err := outline.NewPolygon([]gerber.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	if err != nil {
		t.Fatal(err)
	}
	m, err := k.Extrude(p, 1)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	if m == nil {
		t.Fatal("Extrude() returned nil mesh")
	}
	if !m.IsEmpty() {
		t.Error("stub Extrude() should return empty mesh")
	}
}
