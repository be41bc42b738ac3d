package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazu/pcbgen/pkg/board"
	"github.com/chazu/pcbgen/pkg/kernel"
)

// material is a Wavefront MTL entry.
type material struct {
	name       string
	ka, kd, ks [3]float64
}

var materials = []material{
	{"EdgeCuts", [3]float64{0, 0.5, 0}, [3]float64{0, 0.8, 0}, [3]float64{0.1, 0.1, 0.1}},
	{"TopCopper", [3]float64{0.5, 0, 0}, [3]float64{0.8, 0, 0}, [3]float64{0.8, 0.8, 0.8}},
	{"BottomCopper", [3]float64{0, 0, 0.5}, [3]float64{0, 0, 0.8}, [3]float64{0.8, 0.8, 0.8}},
	{"TopSilkscreen", [3]float64{0.9, 0.9, 0.9}, [3]float64{1, 1, 1}, [3]float64{0, 0, 0}},
	{"BottomSilkscreen", [3]float64{0.5, 0.5, 0}, [3]float64{0.8, 0.8, 0}, [3]float64{0, 0, 0}},
}

// materialFor picks the material for a mesh. Layers without their own
// material share the board's.
func materialFor(m *kernel.Mesh) string {
	switch m.Layer {
	case kernel.Copper, kernel.Silkscreen:
		return m.Side.String() + m.Layer.String()
	default:
		return "EdgeCuts"
	}
}

func writeOBJ(m *board.Model, path string, opts Options) ([]string, error) {
	files := []string{path}
	mtllib := ""
	if opts.Colors {
		mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"
		if err := writeFile(mtlPath, writeMTL); err != nil {
			return nil, err
		}
		mtllib = filepath.Base(mtlPath)
		files = append(files, mtlPath)
	}
	err := writeFile(path, func(w io.Writer) error {
		return encodeOBJ(w, m, mtllib)
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// writeFile creates path and streams fn's output into it through a buffer.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeMTL(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "# Layer materials"); err != nil {
		return err
	}
	for _, mat := range materials {
		_, err := fmt.Fprintf(w, "\nnewmtl %s\nKa %g %g %g\nKd %g %g %g\nKs %g %g %g\nd 1.0\nillum 2\n",
			mat.name,
			mat.ka[0], mat.ka[1], mat.ka[2],
			mat.kd[0], mat.kd[1], mat.kd[2],
			mat.ks[0], mat.ks[1], mat.ks[2])
		if err != nil {
			return err
		}
	}
	return nil
}

// encodeOBJ writes every mesh with one v and one vn line per vertex and
// faces as 1-based v//vn pairs. Vertex numbering continues across meshes.
func encodeOBJ(w io.Writer, m *board.Model, mtllib string) error {
	ew := &errWriter{w: w}
	ew.printf("# PCB model exported from Gerber\n")
	if mtllib != "" {
		ew.printf("mtllib %s\n", mtllib)
	}

	base := 1
	for _, mesh := range m.Meshes {
		ew.printf("\n# Layer: %s %s\n", mesh.Side, mesh.Layer)
		ew.printf("o %s_%s\n", mesh.Side, mesh.Layer)
		if mtllib != "" {
			ew.printf("usemtl %s\n", materialFor(mesh))
		}
		for _, v := range mesh.Vertices {
			ew.printf("v %g %g %g\n", v.Position.X, v.Position.Y, v.Position.Z)
			ew.printf("vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
		}
		for _, f := range mesh.Faces {
			if len(f.Indices) < 3 {
				continue
			}
			ew.printf("f")
			for _, idx := range f.Indices {
				ew.printf(" %d//%d", base+idx, base+idx)
			}
			ew.printf("\n")
		}
		base += mesh.VertexCount()
	}
	return ew.err
}

// errWriter remembers the first write error and skips later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
