// Package board turns a directory of Gerber files into a layered 3-D model.
//
// The edge-cuts layer is required: its outline is extruded into the board
// body with a geometry kernel. Copper and silkscreen layers are optional and
// are represented by flat placeholder plates covering the area their
// artwork spans. Failures on optional layers are logged as warnings and
// recorded on the Model; they never fail the conversion.
package board

import (
	"github.com/chazu/pcbgen/pkg/gerber"
	"github.com/chazu/pcbgen/pkg/kernel"
	"github.com/chazu/pcbgen/pkg/outline"
)

// Model is a board made of one mesh per processed layer.
type Model struct {
	Meshes []*kernel.Mesh

	// Units are the units of the edge-cuts file. Coordinates are not
	// converted.
	Units gerber.Units

	// Outline is the board outline the body was extruded from.
	Outline outline.Polygon

	// Thickness is the board thickness the body was extruded to.
	Thickness float64

	// Warnings collects the reasons optional layers were skipped.
	Warnings []string
}

// Count returns the number of meshes of layer type t.
func (m *Model) Count(t kernel.LayerType) int {
	n := 0
	for _, mesh := range m.Meshes {
		if mesh.Layer == t {
			n++
		}
	}
	return n
}

// Body returns the edge-cuts mesh, or nil if the model has none.
func (m *Model) Body() *kernel.Mesh {
	for _, mesh := range m.Meshes {
		if mesh.Layer == kernel.EdgeCuts {
			return mesh
		}
	}
	return nil
}

// Totals returns the vertex and face counts summed over all meshes.
func (m *Model) Totals() (vertices, faces int) {
	for _, mesh := range m.Meshes {
		vertices += mesh.VertexCount()
		faces += mesh.FaceCount()
	}
	return vertices, faces
}
