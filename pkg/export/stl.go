package export

import (
	"github.com/chazu/pcbgen/pkg/board"
	"github.com/chazu/pcbgen/pkg/kernel"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// triangles flattens every mesh in m into sdfx triangles.
func triangles(m *board.Model) []*sdf.Triangle3 {
	var out []*sdf.Triangle3
	for _, mesh := range m.Meshes {
		for _, tri := range mesh.Triangles() {
			t := &sdf.Triangle3{}
			for j, idx := range tri {
				t[j] = vec(mesh.Vertices[idx].Position)
			}
			out = append(out, t)
		}
	}
	return out
}

func vec(p kernel.Point3D) v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

func writeSTL(m *board.Model, path string, _ Options) ([]string, error) {
	if err := render.SaveSTL(path, triangles(m)); err != nil {
		return nil, err
	}
	return []string{path}, nil
}
