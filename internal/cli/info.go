package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chazu/pcbgen/pkg/board"
	"github.com/chazu/pcbgen/pkg/gerber"
)

func (a *app) newInfoCmd() *cobra.Command {
	var (
		input    string
		detailed bool
	)
	cmd := &cobra.Command{
		Use:   "info [path]",
		Short: "Inspect Gerber files without converting them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				input = args[0]
			}
			return a.info(cmd.OutOrStdout(), input, detailed)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", ".", "Gerber file or directory to analyze")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "show per-file command statistics")
	return cmd
}

func (a *app) info(w io.Writer, input string, detailed bool) error {
	st, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input path: %w", err)
	}
	if !st.IsDir() {
		fmt.Fprintf(w, "Analyzing Gerber file: %s\n", input)
		a.describeFile(w, input, detailed, "  ")
		return nil
	}

	fmt.Fprintf(w, "Analyzing Gerber files in directory: %s\n", input)
	layers, err := board.Discover(input)
	if err != nil {
		return err
	}
	if len(layers.Files) == 0 {
		fmt.Fprintln(w, "No Gerber files found in directory")
		return nil
	}
	fmt.Fprintf(w, "Found %d Gerber files:\n", len(layers.Files))
	for _, f := range layers.Files {
		fmt.Fprintf(w, "  %s\n", filepath.Base(f))
		if detailed {
			a.describeFile(w, f, a.verbose > 0, "    ")
			fmt.Fprintf(w, "    Likely layer type: %s\n", board.IdentifyLayerType(f))
		}
	}
	if _, ok := layers.Path(board.EdgeCuts); !ok {
		fmt.Fprintln(w, "Warning: no edge cuts file found; convert will fail")
	}
	return nil
}

// describeFile prints the command count of path and, when stats is set,
// a breakdown by command kind. Parse failures are reported, not returned,
// so one bad file does not hide the others.
func (a *app) describeFile(w io.Writer, path string, stats bool, indent string) {
	cmds, err := gerber.ParseFile(path)
	if err != nil {
		fmt.Fprintf(w, "%sNot a valid Gerber file: %v\n", indent, err)
		return
	}
	fmt.Fprintf(w, "%sValid Gerber file with %d commands\n", indent, len(cmds))
	if !stats {
		return
	}
	s := gerber.Analyze(cmds)
	fmt.Fprintf(w, "%sCommand statistics:\n", indent)
	fmt.Fprintf(w, "%s  Move commands: %d\n", indent, s.Moves)
	fmt.Fprintf(w, "%s  Draw commands: %d\n", indent, s.Draws)
	fmt.Fprintf(w, "%s  Arc commands: %d\n", indent, s.Arcs)
	fmt.Fprintf(w, "%s  Flash commands: %d\n", indent, s.Flashes)
	fmt.Fprintf(w, "%s  Other commands: %d\n", indent, s.Other)
	fmt.Fprintf(w, "%sUnits: %s\n", indent, gerber.UnitsOf(cmds))
}
