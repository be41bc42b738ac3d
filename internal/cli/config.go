package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/chazu/pcbgen/pkg/board"
	"github.com/chazu/pcbgen/pkg/export"
	"github.com/chazu/pcbgen/pkg/kernel"
	"github.com/chazu/pcbgen/pkg/kernel/prism"
	"github.com/chazu/pcbgen/pkg/kernel/sdfx"
	"github.com/chazu/pcbgen/pkg/outline"
)

const (
	configFileName = "pcbgen"
	configFileType = "yaml"
	envPrefix      = "PCBGEN"

	cfgKeyThickness   = "thickness"
	cfgKeyFormat      = "format"
	cfgKeyOutput      = "output"
	cfgKeyColors      = "colors"
	cfgKeyPreview     = "preview"
	cfgKeyKernel      = "kernel"
	cfgKeyArcSegments = "arc_segments"
	cfgKeyMeshCells   = "mesh_cells"

	defaultOutput = "output/pcb_model"
	defaultFormat = "obj"
	defaultKernel = "prism"
)

// kernels maps configuration names to kernel constructors.
var kernels = map[string]func(c Config) kernel.Kernel{
	"prism": func(Config) kernel.Kernel { return prism.New() },
	"sdfx":  func(c Config) kernel.Kernel { return sdfx.New(c.MeshCells) },
}

// Config is the resolved conversion configuration.
type Config struct {
	Thickness   float64
	Format      export.Format
	Output      string
	Colors      bool
	Preview     bool
	Kernel      string
	ArcSegments int
	MeshCells   int
}

// newViper returns a viper instance with defaults and PCBGEN_* environment
// overrides installed.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyThickness, board.DefaultThickness)
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyColors, false)
	v.SetDefault(cfgKeyPreview, false)
	v.SetDefault(cfgKeyKernel, defaultKernel)
	v.SetDefault(cfgKeyArcSegments, outline.DefaultArcSegments)
	v.SetDefault(cfgKeyMeshCells, sdfx.DefaultMeshCells)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// readConfigFile loads path, or pcbgen.yaml from the working directory when
// path is empty. Only the implicit file may be missing.
func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// configFrom resolves and validates a Config from v.
func configFrom(v *viper.Viper) (Config, error) {
	format, err := export.ParseFormat(v.GetString(cfgKeyFormat))
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Thickness:   v.GetFloat64(cfgKeyThickness),
		Format:      format,
		Output:      v.GetString(cfgKeyOutput),
		Colors:      v.GetBool(cfgKeyColors),
		Preview:     v.GetBool(cfgKeyPreview),
		Kernel:      strings.ToLower(v.GetString(cfgKeyKernel)),
		ArcSegments: v.GetInt(cfgKeyArcSegments),
		MeshCells:   v.GetInt(cfgKeyMeshCells),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Thickness <= 0:
		return fmt.Errorf("config: thickness must be positive, got %g", c.Thickness)
	case c.ArcSegments < 1:
		return fmt.Errorf("config: arc_segments must be at least 1, got %d", c.ArcSegments)
	case c.MeshCells < 1:
		return fmt.Errorf("config: mesh_cells must be at least 1, got %d", c.MeshCells)
	case c.Output == "":
		return errors.New("config: output must not be empty")
	}
	if _, ok := kernels[c.Kernel]; !ok {
		return fmt.Errorf("config: unknown kernel %q (want prism or sdfx)", c.Kernel)
	}
	return nil
}

// NewKernel builds the configured geometry kernel.
func (c Config) NewKernel() kernel.Kernel {
	return kernels[c.Kernel](c)
}

// boardOptions converts c into options for board.Process.
func (c Config) boardOptions() board.Options {
	return board.Options{
		Thickness:   c.Thickness,
		Kernel:      c.NewKernel(),
		ArcSegments: c.ArcSegments,
	}
}
