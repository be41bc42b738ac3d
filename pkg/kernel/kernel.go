// Package kernel defines the geometry kernel interface used to turn a board
// outline into a solid. Implementations (prism, sdfx) sit behind this
// interface so the board pipeline can swap backends without changes.
package kernel

import "github.com/chazu/pcbgen/pkg/outline"

// Kernel extrudes a closed outline into a solid surface mesh.
type Kernel interface {
	// Name identifies the backend in configuration and logs.
	Name() string

	// Extrude returns a mesh spanning z = 0 to z = thickness.
	Extrude(p outline.Polygon, thickness float64) (*Mesh, error)
}
