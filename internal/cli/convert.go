package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/chazu/pcbgen/pkg/board"
	"github.com/chazu/pcbgen/pkg/export"
	"github.com/chazu/pcbgen/pkg/kernel"
	"github.com/chazu/pcbgen/pkg/kernel/sdfx"
	"github.com/chazu/pcbgen/pkg/outline"
)

func (a *app) newConvertCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "convert [dir]",
		Short: "Convert a directory of Gerber files into a 3D model",
		Long: `Convert scans a directory for .gbr files, classifies them by name and builds
a model. An edge cuts file (name containing "edge", "outline" or "cuts") is
required. Settings come from flags, PCBGEN_* environment variables, the
config file and built-in defaults, in that order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				input = args[0]
			}
			return a.convert(cmd, input)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", ".", "directory containing Gerber files")
	f.StringP("output", "o", defaultOutput, "output path without extension")
	f.StringP("format", "f", defaultFormat, fmt.Sprintf("export format (%v)", export.FormatNames()))
	f.Float64P("thickness", "t", board.DefaultThickness, "board thickness in mm")
	f.BoolP("colors", "c", false, "write per-layer materials (OBJ)")
	f.BoolP("preview", "p", false, "open the model after export")
	f.String("kernel", defaultKernel, "geometry kernel (prism or sdfx)")
	f.Int("arc-segments", outline.DefaultArcSegments, "chords per arc in the outline")
	f.Int("mesh-cells", sdfx.DefaultMeshCells, "marching cubes resolution for the sdfx kernel")

	a.bindFlags(f, map[string]string{
		cfgKeyOutput:      "output",
		cfgKeyFormat:      "format",
		cfgKeyThickness:   "thickness",
		cfgKeyColors:      "colors",
		cfgKeyPreview:     "preview",
		cfgKeyKernel:      "kernel",
		cfgKeyArcSegments: "arc-segments",
		cfgKeyMeshCells:   "mesh-cells",
	})
	return cmd
}

// bindFlags binds each config key to its flag so flags set on the command
// line override every other source.
func (a *app) bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// BindPFlag only fails for a nil flag.
		_ = a.v.BindPFlag(key, fs.Lookup(name))
	}
}

// convert processes input and exports the model.
func (a *app) convert(cmd *cobra.Command, input string) error {
	cfg, err := configFrom(a.v)
	if err != nil {
		return err
	}
	log := a.log

	log.Info("converting",
		"input", input,
		"output", cfg.Output+cfg.Format.Ext(),
		"format", cfg.Format,
		"thickness_mm", cfg.Thickness,
		"kernel", cfg.Kernel,
		"colors", cfg.Colors,
		"preview", cfg.Preview,
	)

	model, err := board.Process(input, cfg.boardOptions())
	if err != nil {
		return fmt.Errorf("processing gerber files: %w (try 'pcbgen info' to inspect them)", err)
	}

	vertices, faces := model.Totals()
	log.Info("model created",
		"meshes", len(model.Meshes),
		"edge_cuts", model.Count(kernel.EdgeCuts),
		"copper", model.Count(kernel.Copper),
		"silkscreen", model.Count(kernel.Silkscreen),
		"vertices", vertices,
		"faces", faces,
		"units", model.Units,
	)

	files, err := export.Export(model, cfg.Output, export.Options{Format: cfg.Format, Colors: cfg.Colors})
	if err != nil {
		return err
	}
	if !a.quiet {
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
		}
	}

	if cfg.Preview {
		log.Info("opening model in default viewer", "file", files[0])
		if err := a.open(files[0]); err != nil {
			log.Warn("preview failed", "err", err)
		}
	}
	return nil
}
