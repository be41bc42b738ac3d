package gerber

import (
	"strconv"
	"strings"
)

// State is the parser context carried from one line to the next.
type State struct {
	X      float64
	Y      float64
	Format FormatSpec
	Mode   InterpolationMode
}

// InitialState is the context at the top of every file.
func InitialState() State {
	return State{Format: DefaultFormat, Mode: Linear}
}

// Current returns the current position as a Point.
func (s State) Current() Point {
	return Point{X: s.X, Y: s.Y}
}

// recognizer matches one kind of line. It returns the next state and the
// command produced, or ok == false to let the next recognizer try.
type recognizer struct {
	name  string
	match func(st State, line string) (State, Command, bool)
}

// grammar lists the recognizers in priority order. The first match wins;
// the operation recognizer is last because its token shape overlaps with
// every other kind of line that ends in '*'.
var grammar = []recognizer{
	{"format-specification", recognizeFormat},
	{"units", recognizeUnits},
	{"aperture-definition", recognizeApertureDefinition},
	{"interpolation-mode", recognizeInterpolationMode},
	{"region", recognizeRegion},
	{"end-of-file", recognizeEndOfFile},
	{"aperture-selection", recognizeApertureSelection},
	{"operation", recognizeOperation},
}

// Step applies one source line to st. Blank lines and G04 comments produce
// no command. ok is false when no command was produced; the returned state
// may still differ from st (an operation line without a D code moves the
// current point).
func Step(st State, line string) (State, Command, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "G04") {
		return st, nil, false
	}
	// A declining recognizer hands back st unchanged, except the operation
	// recognizer, which keeps any X/Y it decoded even without a D code.
	for _, r := range grammar {
		var cmd Command
		var ok bool
		st, cmd, ok = r.match(st, line)
		if ok {
			return st, cmd, true
		}
	}
	return st, nil, false
}

func recognizeFormat(st State, line string) (State, Command, bool) {
	body, ok := strings.CutPrefix(line, "%FSLAX")
	if !ok {
		return st, nil, false
	}
	body, ok = strings.CutSuffix(body, "*%")
	if !ok {
		return st, nil, false
	}
	xPart, _, ok := strings.Cut(body, "Y")
	if !ok || len(xPart) != 2 || !isDigits(xPart) {
		return st, nil, false
	}
	f := FormatSpec{
		IntegerDigits: int(xPart[0] - '0'),
		DecimalDigits: int(xPart[1] - '0'),
	}
	st.Format = f
	return st, FormatSpecification{IntegerDigits: f.IntegerDigits, DecimalDigits: f.DecimalDigits}, true
}

func recognizeUnits(st State, line string) (State, Command, bool) {
	switch line {
	case "%MOMM*%":
		return st, SetUnitsMM, true
	case "%MOIN*%":
		return st, SetUnitsInch, true
	}
	return st, nil, false
}

// recognizeApertureDefinition handles the C, R and O standard templates.
// Any trailing hole parameter is accepted and ignored.
func recognizeApertureDefinition(st State, line string) (State, Command, bool) {
	body, ok := strings.CutPrefix(line, "%ADD")
	if !ok {
		return st, nil, false
	}
	body, ok = strings.CutSuffix(body, "*%")
	if !ok {
		return st, nil, false
	}

	n := 0
	for n < len(body) && body[n] >= '0' && body[n] <= '9' {
		n++
	}
	if n == 0 {
		return st, nil, false
	}
	code, err := strconv.Atoi(body[:n])
	if err != nil {
		return st, nil, false
	}

	shape, params, ok := strings.Cut(body[n:], ",")
	if !ok {
		return st, nil, false
	}
	values, ok := parseFloats(strings.Split(params, "X"))
	if !ok {
		return st, nil, false
	}

	var ap Aperture
	switch shape {
	case "C":
		ap = Aperture{Shape: ApertureCircle, Diameter: values[0]}
	case "R", "O":
		if len(values) < 2 {
			return st, nil, false
		}
		ap = Aperture{Shape: ApertureRectangle, Width: values[0], Height: values[1]}
		if shape == "O" {
			ap.Shape = ApertureObround
		}
	default:
		return st, nil, false
	}
	return st, DefineAperture{Code: code, Aperture: ap}, true
}

func parseFloats(fields []string) ([]float64, bool) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, len(out) > 0
}

var modeTokens = []struct {
	token string
	mode  InterpolationMode
}{
	{"G01", Linear},
	{"G02", ClockwiseArc},
	{"G03", CounterClockwiseArc},
}

func recognizeInterpolationMode(st State, line string) (State, Command, bool) {
	for _, t := range modeTokens {
		if strings.HasPrefix(line, t.token) {
			st.Mode = t.mode
			return st, SetInterpolationMode{Mode: t.mode}, true
		}
	}
	return st, nil, false
}

func recognizeRegion(st State, line string) (State, Command, bool) {
	switch {
	case strings.HasPrefix(line, "G36"):
		return st, BeginRegion{}, true
	case strings.HasPrefix(line, "G37"):
		return st, EndRegion{}, true
	}
	return st, nil, false
}

func recognizeEndOfFile(st State, line string) (State, Command, bool) {
	if strings.HasPrefix(line, "M02") {
		return st, EndOfFile{}, true
	}
	return st, nil, false
}

// recognizeApertureSelection accepts D<code>* and the deprecated G54D<code>*.
func recognizeApertureSelection(st State, line string) (State, Command, bool) {
	body := strings.TrimPrefix(line, "G54")
	body, ok := strings.CutPrefix(body, "D")
	if !ok {
		return st, nil, false
	}
	body, ok = strings.CutSuffix(body, "*")
	if !ok || !isDigits(body) || body == "" {
		return st, nil, false
	}
	code, err := strconv.Atoi(body)
	if err != nil || code < 10 {
		return st, nil, false
	}
	return st, SelectAperture{Code: code}, true
}

// field returns the value following letter up to the next field delimiter.
func field(line string, letter byte) (string, bool) {
	i := strings.IndexByte(line, letter)
	if i < 0 {
		return "", false
	}
	rest := line[i+1:]
	if end := strings.IndexAny(rest, "XYIJD*"); end >= 0 {
		rest = rest[:end]
	}
	return rest, true
}

// decodeField decodes the value of letter, if present and well formed.
func decodeField(line string, letter byte, f FormatSpec) (float64, bool) {
	raw, ok := field(line, letter)
	if !ok {
		return 0, false
	}
	v, err := Decode(raw, f)
	if err != nil {
		return 0, false
	}
	return v, true
}

// operationCode returns the integer D code on an operation line.
func operationCode(line string) (int, bool) {
	raw, ok := field(line, 'D')
	if !ok || raw == "" || !isDigits(raw) {
		return 0, false
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return code, true
}

func recognizeOperation(st State, line string) (State, Command, bool) {
	if !strings.HasSuffix(line, "*") {
		return st, nil, false
	}

	if x, ok := decodeField(line, 'X', st.Format); ok {
		st.X = x
	}
	if y, ok := decodeField(line, 'Y', st.Format); ok {
		st.Y = y
	}
	i, hasI := decodeField(line, 'I', st.Format)
	j, hasJ := decodeField(line, 'J', st.Format)

	code, ok := operationCode(line)
	if !ok {
		return st, nil, false
	}
	p := st.Current()
	switch code {
	case 1:
		if st.Mode.IsArc() && hasI && hasJ {
			return st, ArcDraw{EndPoint: p, CenterOffset: Point{X: i, Y: j}}, true
		}
		return st, Draw{Point: p}, true
	case 2:
		return st, Move{Point: p}, true
	case 3:
		return st, Flash{Point: p}, true
	}
	return st, nil, false
}
