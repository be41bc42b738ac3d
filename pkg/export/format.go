// Package export writes board models to mesh and drawing file formats.
package export

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for format names that have no writer.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Format is an output file format.
type Format int

const (
	OBJ Format = iota
	STL
	ThreeMF
	DXF
)

var formatNames = []struct {
	format Format
	name   string
}{
	{OBJ, "obj"},
	{STL, "stl"},
	{ThreeMF, "3mf"},
	{DXF, "dxf"},
}

func (f Format) String() string {
	for _, n := range formatNames {
		if n.format == f {
			return n.name
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat looks up a format by name, ignoring case and a leading dot.
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for _, n := range formatNames {
		if n.name == name {
			return n.format, nil
		}
	}
	return 0, fmt.Errorf("%w %q (want one of %s)", ErrUnsupportedFormat, s, strings.Join(FormatNames(), ", "))
}

// FormatNames lists the supported format names.
func FormatNames() []string {
	out := make([]string, len(formatNames))
	for i, n := range formatNames {
		out[i] = n.name
	}
	return out
}
