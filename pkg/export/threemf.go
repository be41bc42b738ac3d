package export

import (
	"fmt"

	"github.com/chazu/pcbgen/pkg/board"
	"github.com/chazu/pcbgen/pkg/gerber"
	"github.com/hpinc/go3mf"
)

// build3MF converts m into a 3MF model with one object and one build item
// per mesh.
func build3MF(m *board.Model) *go3mf.Model {
	model := &go3mf.Model{Units: go3mf.UnitMillimeter}
	if m.Units == gerber.Inches {
		model.Units = go3mf.UnitInch
	}
	for i, mesh := range m.Meshes {
		obj := &go3mf.Object{
			ID:   uint32(i + 1),
			Name: fmt.Sprintf("%s %s", mesh.Side, mesh.Layer),
			Mesh: new(go3mf.Mesh),
		}
		for _, v := range mesh.Vertices {
			p := v.Position
			obj.Mesh.Vertices.Vertex = append(obj.Mesh.Vertices.Vertex,
				go3mf.Point3D{float32(p.X), float32(p.Y), float32(p.Z)})
		}
		for _, tri := range mesh.Triangles() {
			obj.Mesh.Triangles.Triangle = append(obj.Mesh.Triangles.Triangle, go3mf.Triangle{
				V1: uint32(tri[0]),
				V2: uint32(tri[1]),
				V3: uint32(tri[2]),
			})
		}
		model.Resources.Objects = append(model.Resources.Objects, obj)
		model.Build.Items = append(model.Build.Items, &go3mf.Item{
			ObjectID:  obj.ID,
			Transform: go3mf.Identity(),
		})
	}
	return model
}

func write3MF(m *board.Model, path string, _ Options) ([]string, error) {
	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return nil, err
	}
	if err := w.Encode(build3MF(m)); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return []string{path}, nil
}
