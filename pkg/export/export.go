package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chazu/pcbgen/pkg/board"
)

// Options control an export.
type Options struct {
	Format Format

	// Colors writes a material library alongside OBJ output and assigns
	// each layer its material. Other formats ignore it.
	Colors bool
}

type writerFunc func(m *board.Model, path string, opts Options) ([]string, error)

var writers = map[Format]writerFunc{
	OBJ:     writeOBJ,
	STL:     writeSTL,
	ThreeMF: write3MF,
	DXF:     writeDXF,
}

// Export writes m to base plus the format's extension, creating the parent
// directory if needed. It returns the paths of every file written.
func Export(m *board.Model, base string, opts Options) ([]string, error) {
	w, ok := writers[opts.Format]
	if !ok {
		return nil, fmt.Errorf("%w %v", ErrUnsupportedFormat, opts.Format)
	}
	if len(m.Meshes) == 0 {
		return nil, fmt.Errorf("export: model has no meshes")
	}
	path := base + opts.Format.Ext()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("export: creating output directory: %w", err)
		}
	}
	files, err := w(m, path, opts)
	if err != nil {
		return nil, fmt.Errorf("export: writing %s: %w", opts.Format, err)
	}
	return files, nil
}
