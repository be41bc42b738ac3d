package gerber

import "fmt"

// Point is a 2-D coordinate on the board plane, in the file's units.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// FormatSpec governs how dotless coordinate tokens are decoded.
type FormatSpec struct {
	IntegerDigits int
	DecimalDigits int
}

// DefaultFormat is the format assumed until a %FS command is seen.
var DefaultFormat = FormatSpec{IntegerDigits: 2, DecimalDigits: 4}

// TotalDigits returns the zero-padded width of a dotless token.
func (f FormatSpec) TotalDigits() int {
	return f.IntegerDigits + f.DecimalDigits
}

func (f FormatSpec) String() string {
	return fmt.Sprintf("%d.%d", f.IntegerDigits, f.DecimalDigits)
}

// InterpolationMode selects how D01 operations connect points.
type InterpolationMode int

const (
	Linear InterpolationMode = iota
	ClockwiseArc
	CounterClockwiseArc
)

func (m InterpolationMode) String() string {
	switch m {
	case Linear:
		return "Linear"
	case ClockwiseArc:
		return "ClockwiseArc"
	case CounterClockwiseArc:
		return "CounterClockwiseArc"
	default:
		return fmt.Sprintf("InterpolationMode(%d)", int(m))
	}
}

// IsArc reports whether m is one of the circular modes.
func (m InterpolationMode) IsArc() bool {
	return m == ClockwiseArc || m == CounterClockwiseArc
}

// Units is the measurement unit declared by a %MO command.
type Units int

const (
	Millimeters Units = iota
	Inches
)

func (u Units) String() string {
	if u == Inches {
		return "in"
	}
	return "mm"
}

// ApertureShape is the standard aperture template of a definition.
type ApertureShape int

const (
	ApertureCircle ApertureShape = iota
	ApertureRectangle
	ApertureObround
)

func (s ApertureShape) String() string {
	switch s {
	case ApertureCircle:
		return "C"
	case ApertureRectangle:
		return "R"
	case ApertureObround:
		return "O"
	default:
		return "?"
	}
}

// Aperture describes a drawing-tool shape. Circles use Diameter only;
// rectangles and obrounds use Width and Height.
type Aperture struct {
	Shape    ApertureShape
	Diameter float64
	Width    float64
	Height   float64
}

// Command is one typed drawing instruction. The set of implementations is
// closed; switch on the concrete type to consume a sequence.
type Command interface {
	isCommand()
}

// FormatSpecification is %FSLAX..Y..*%.
type FormatSpecification struct {
	IntegerDigits int
	DecimalDigits int
}

// SetUnits is %MOMM*% or %MOIN*%.
type SetUnits struct {
	Units Units
}

// DefineAperture is %ADD<code><shape>,<params>*%.
type DefineAperture struct {
	Code     int
	Aperture Aperture
}

// SelectAperture is D<code>* with code >= 10.
type SelectAperture struct {
	Code int
}

// SetInterpolationMode is G01, G02 or G03.
type SetInterpolationMode struct {
	Mode InterpolationMode
}

// Move is a D02 operation.
type Move struct {
	Point Point
}

// Draw is a D01 operation in linear mode (or an arc line missing I/J).
type Draw struct {
	Point Point
}

// Flash is a D03 operation.
type Flash struct {
	Point Point
}

// ArcDraw is a D01 operation in a circular mode with both I and J present.
// CenterOffset is relative to the point the arc starts from.
type ArcDraw struct {
	EndPoint     Point
	CenterOffset Point
}

// BeginRegion is G36.
type BeginRegion struct{}

// EndRegion is G37.
type EndRegion struct{}

// EndOfFile is M02.
type EndOfFile struct{}

func (FormatSpecification) isCommand()  {}
func (SetUnits) isCommand()             {}
func (DefineAperture) isCommand()       {}
func (SelectAperture) isCommand()       {}
func (SetInterpolationMode) isCommand() {}
func (Move) isCommand()                 {}
func (Draw) isCommand()                 {}
func (Flash) isCommand()                {}
func (ArcDraw) isCommand()              {}
func (BeginRegion) isCommand()          {}
func (EndRegion) isCommand()            {}
func (EndOfFile) isCommand()            {}

// SetUnitsMM and SetUnitsInch are the two unit commands.
var (
	SetUnitsMM   = SetUnits{Units: Millimeters}
	SetUnitsInch = SetUnits{Units: Inches}
)
