package board

import (
	"errors"
	"fmt"
	"os"

	"github.com/chazu/pcbgen/pkg/gerber"
	"github.com/chazu/pcbgen/pkg/kernel"
	"github.com/chazu/pcbgen/pkg/kernel/prism"
	"github.com/chazu/pcbgen/pkg/outline"
)

// DefaultThickness is the standard FR-4 board thickness in millimetres.
const DefaultThickness = 1.6

// ErrNoOutline is returned when no edge-cuts file is found.
var ErrNoOutline = errors.New("board: edge cuts layer not found; it is required for the board outline")

// Options control how a board is built.
type Options struct {
	// Thickness of the board body. Zero selects DefaultThickness.
	Thickness float64

	// Kernel extrudes the outline. Nil selects the prism kernel.
	Kernel kernel.Kernel

	// ArcSegments is the number of chords per arc. Zero selects
	// outline.DefaultArcSegments.
	ArcSegments int
}

func (o Options) withDefaults() (Options, error) {
	if o.Thickness == 0 {
		o.Thickness = DefaultThickness
	}
	if o.Thickness < 0 {
		return o, fmt.Errorf("board: thickness must be positive, got %g", o.Thickness)
	}
	if o.Kernel == nil {
		o.Kernel = prism.New()
	}
	if o.ArcSegments == 0 {
		o.ArcSegments = outline.DefaultArcSegments
	}
	if o.ArcSegments < 0 {
		return o, fmt.Errorf("board: arc segments must be positive, got %d", o.ArcSegments)
	}
	return o, nil
}

// Process discovers the Gerber files in dir and builds a Model from them.
func Process(dir string, opts Options) (*Model, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("board: input directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("board: input %s is not a directory", dir)
	}
	layers, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	return Build(layers, opts)
}

// Build processes the classified layers. The edge-cuts layer must exist and
// succeed; every other layer only adds a warning when it fails.
func Build(layers *Layers, opts Options) (*Model, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	if _, ok := layers.Path(EdgeCuts); !ok {
		return nil, ErrNoOutline
	}

	b := &builder{opts: opts, model: &Model{Thickness: opts.Thickness}}
	log := Logger()
	for _, role := range processOrder {
		path, ok := layers.Path(role)
		if !ok {
			continue
		}
		log.Info("processing layer", "role", role, "file", path)

		mesh, err := b.layer(role, path)
		if err != nil {
			if role == EdgeCuts {
				return nil, fmt.Errorf("board: %s layer %s: %w", role, path, err)
			}
			log.Warn("layer skipped", "role", role, "file", path, "err", err)
			b.model.Warnings = append(b.model.Warnings, fmt.Sprintf("%s layer %s: %v", role, path, err))
			continue
		}
		log.Info("layer mesh created", "role", role, "vertices", mesh.VertexCount(), "faces", mesh.FaceCount())
		b.model.Meshes = append(b.model.Meshes, mesh)
	}
	return b.model, nil
}

// builder carries the options and the model under construction.
type builder struct {
	opts  Options
	model *Model
}

// layer parses path and dispatches on the role's layer type.
func (b *builder) layer(role Role, path string) (*kernel.Mesh, error) {
	p := gerber.Parser{
		OnSkip: func(lineNo int, line string) {
			Logger().Debug("skipped gerber line", "file", path, "line", lineNo, "text", line)
		},
	}
	cmds, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}

	switch role.Type {
	case kernel.EdgeCuts:
		return b.edgeCuts(cmds)
	case kernel.Copper, kernel.Silkscreen:
		return b.placeholder(role, cmds), nil
	default:
		return nil, fmt.Errorf("unsupported layer type %v", role.Type)
	}
}

// edgeCuts builds the outline and extrudes it into the board body.
func (b *builder) edgeCuts(cmds []gerber.Command) (*kernel.Mesh, error) {
	poly, err := outline.Builder{ArcSegments: b.opts.ArcSegments}.Build(cmds)
	if err != nil {
		return nil, err
	}
	mesh, err := b.opts.Kernel.Extrude(poly, b.opts.Thickness)
	if err != nil {
		return nil, fmt.Errorf("%s kernel: %w", b.opts.Kernel.Name(), err)
	}
	mesh.Layer = kernel.EdgeCuts
	mesh.Side = kernel.Top

	b.model.Outline = poly
	b.model.Units = gerber.UnitsOf(cmds)
	Logger().Debug("outline built", "points", poly.Len(), "units", b.model.Units, "kernel", b.opts.Kernel.Name())
	return mesh, nil
}

// placeholder stands in for copper and silkscreen artwork with a plate
// covering the layer's extent. Layers without coordinates, or whose
// coordinates have no area, get a fixed-size square on the artwork or board
// centre.
func (b *builder) placeholder(role Role, cmds []gerber.Command) *kernel.Mesh {
	e, ok := artworkExtent(cmds)
	if !ok || e.max.X == e.min.X || e.max.Y == e.min.Y {
		c := gerber.Point{}
		if ok {
			c = e.center()
		} else if b.model.Outline.Len() > 0 {
			lo, hi := b.model.Outline.Bounds()
			c = extent{min: lo, max: hi}.center()
		}
		e = square(c, placeholderSize(role.Type))
	}
	return plate(e, layerHeight(role, b.opts.Thickness), role)
}
