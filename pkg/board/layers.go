package board

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chazu/pcbgen/pkg/kernel"
)

// Role is the job a Gerber file plays in the board stack-up.
type Role struct {
	Type kernel.LayerType
	Side kernel.Side
}

// Roles recognised by file name, in processing order.
var (
	EdgeCuts         = Role{Type: kernel.EdgeCuts}
	TopCopper        = Role{Type: kernel.Copper, Side: kernel.Top}
	BottomCopper     = Role{Type: kernel.Copper, Side: kernel.Bottom}
	TopSilkscreen    = Role{Type: kernel.Silkscreen, Side: kernel.Top}
	BottomSilkscreen = Role{Type: kernel.Silkscreen, Side: kernel.Bottom}
)

func (r Role) String() string {
	if r.Type == kernel.EdgeCuts {
		return r.Type.String()
	}
	return r.Side.String() + " " + r.Type.String()
}

// classifier maps a role to the lower-case file name fragments that mark it.
// The first matching entry wins, so edge cuts beat everything else.
type classifier struct {
	role      Role
	fragments []string
}

var classifiers = []classifier{
	{EdgeCuts, []string{"edge", "outline", "cuts"}},
	{TopCopper, []string{"f.cu", "f_cu", "top.cu"}},
	{BottomCopper, []string{"b.cu", "b_cu", "bottom.cu"}},
	{TopSilkscreen, []string{"f.silk", "f_silk", "top.silk"}},
	{BottomSilkscreen, []string{"b.silk", "b_silk", "bottom.silk"}},
}

// processOrder is the order Build handles layers in. Edge cuts come first
// because the board thickness and units hang off the outline.
var processOrder = []Role{EdgeCuts, TopCopper, BottomCopper, TopSilkscreen, BottomSilkscreen}

// Classify guesses a file's role from its base name.
func Classify(path string) (Role, bool) {
	name := strings.ToLower(filepath.Base(path))
	for _, c := range classifiers {
		for _, frag := range c.fragments {
			if strings.Contains(name, frag) {
				return c.role, true
			}
		}
	}
	return Role{}, false
}

// IdentifyLayerType returns the likely layer type of path, defaulting to
// EdgeCuts for names that match no convention.
func IdentifyLayerType(path string) kernel.LayerType {
	r, ok := Classify(path)
	if !ok {
		return kernel.EdgeCuts
	}
	return r.Type
}

// IsGerber reports whether path has a .gbr or .GBR extension.
func IsGerber(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".gbr" || ext == ".GBR"
}

// Layers is the result of scanning a directory for Gerber files.
type Layers struct {
	Dir string

	// Files lists every Gerber file found, sorted by name.
	Files []string

	// Roles maps each recognised role to the first file claiming it.
	Roles map[Role]string

	// Unmatched lists Gerber files whose name matched no role, and files
	// that lost a role to an earlier one.
	Unmatched []string
}

// Path returns the file for role r.
func (l *Layers) Path(r Role) (string, bool) {
	p, ok := l.Roles[r]
	return p, ok
}

// Discover scans dir (non-recursively) for Gerber files and classifies
// them by name.
func Discover(dir string) (*Layers, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("board: reading directory: %w", err)
	}

	l := &Layers{Dir: dir, Roles: make(map[Role]string)}
	for _, e := range entries {
		if e.IsDir() || !IsGerber(e.Name()) {
			continue
		}
		l.Files = append(l.Files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(l.Files)

	log := Logger()
	for _, f := range l.Files {
		r, ok := Classify(f)
		if !ok {
			log.Debug("unrecognised gerber file", "file", f)
			l.Unmatched = append(l.Unmatched, f)
			continue
		}
		if prev, taken := l.Roles[r]; taken {
			log.Debug("duplicate layer file ignored", "role", r, "file", f, "using", prev)
			l.Unmatched = append(l.Unmatched, f)
			continue
		}
		l.Roles[r] = f
	}
	return l, nil
}
