// Package cli implements the pcbgen command-line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chazu/pcbgen/pkg/board"
)

// app holds the state shared by one command tree.
type app struct {
	v *viper.Viper

	configFile string
	verbose    int
	quiet      bool

	log *slog.Logger

	// open shows a written file to the user.
	open func(path string) error
}

func newApp() *app {
	return &app{
		v:    newViper(),
		log:  slog.New(slog.NewTextHandler(os.Stderr, nil)),
		open: browser.OpenFile,
	}
}

// NewRootCmd creates the top-level "pcbgen" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pcbgen",
		Short: "Turn flat PCB Gerber files into 3D models",
		Long: `pcbgen reads the Gerber files of a board, extrudes the edge cuts outline
into a solid of the configured thickness, adds placeholder plates for copper
and silkscreen layers and exports the result as OBJ, STL, 3MF or DXF.

Run without a subcommand it converts the current directory.`,
		Args: cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, ".")
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./pcbgen.yaml)")
	root.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase verbosity (repeatable)")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress all non-error output")

	root.AddCommand(a.newConvertCmd())
	root.AddCommand(a.newInfoCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads configuration and installs the logger before any command
// runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := readConfigFile(a.v, a.configFile); err != nil {
		return err
	}

	level := slog.LevelInfo
	switch {
	case a.quiet:
		level = slog.LevelError
	case a.verbose > 0:
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	board.SetLogger(a.log)

	if !a.quiet && cmd.Name() != "version" && isTerminal(cmd.OutOrStdout()) {
		printBanner(cmd.OutOrStdout())
	}
	return nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
