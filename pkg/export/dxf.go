package export

import (
	"fmt"

	"github.com/chazu/pcbgen/pkg/board"
	"github.com/yofu/dxf"
)

// OutlineLayer is the DXF layer the board outline is drawn on.
const OutlineLayer = "Outline"

// writeDXF draws the board outline as one LINE entity per edge. Only the
// outline is written; layer meshes have no 2-D equivalent.
func writeDXF(m *board.Model, path string, _ Options) ([]string, error) {
	ring := m.Outline.Ring()
	if len(ring) < 2 {
		return nil, fmt.Errorf("model has no outline")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(OutlineLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return nil, err
	}
	for i, a := range ring {
		b := ring[(i+1)%len(ring)]
		if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return nil, err
		}
	}
	if err := d.SaveAs(path); err != nil {
		return nil, err
	}
	return []string{path}, nil
}
