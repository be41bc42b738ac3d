package gerber

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrammarOrder(t *testing.T) {
	want := []string{
		"format-specification",
		"units",
		"aperture-definition",
		"interpolation-mode",
		"region",
		"end-of-file",
		"aperture-selection",
		"operation",
	}
	var got []string
	for _, r := range grammar {
		got = append(got, r.name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("grammar order mismatch (-want +got):\n%s", diff)
	}
}

func TestStepRecognizers(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Command
		wantOK bool
	}{
		{"format", "%FSLAX46Y46*%", FormatSpecification{4, 6}, true},
		{"format bad width", "%FSLAX466Y46*%", nil, false},
		{"units mm", "%MOMM*%", SetUnitsMM, true},
		{"units inch", "%MOIN*%", SetUnitsInch, true},
		{"circle aperture", "%ADD10C,0.1*%", DefineAperture{Code: 10, Aperture: Aperture{Shape: ApertureCircle, Diameter: 0.1}}, true},
		{"circle with hole", "%ADD12C,0.5X0.2*%", DefineAperture{Code: 12, Aperture: Aperture{Shape: ApertureCircle, Diameter: 0.5}}, true},
		{"rectangle aperture", "%ADD11R,0.1X0.2*%", DefineAperture{Code: 11, Aperture: Aperture{Shape: ApertureRectangle, Width: 0.1, Height: 0.2}}, true},
		{"obround aperture", "%ADD13O,1.5X0.8*%", DefineAperture{Code: 13, Aperture: Aperture{Shape: ApertureObround, Width: 1.5, Height: 0.8}}, true},
		{"rectangle missing height", "%ADD11R,0.1*%", nil, false},
		{"macro aperture", "%ADD14RoundRect,0.25X1X1*%", nil, false},
		{"linear", "G01*", SetInterpolationMode{Linear}, true},
		{"clockwise", "G02*", SetInterpolationMode{ClockwiseArc}, true},
		{"counter-clockwise", "G03*", SetInterpolationMode{CounterClockwiseArc}, true},
		{"begin region", "G36*", BeginRegion{}, true},
		{"end region", "G37*", EndRegion{}, true},
		{"end of file", "M02*", EndOfFile{}, true},
		{"select aperture", "D10*", SelectAperture{10}, true},
		{"select aperture G54", "G54D11*", SelectAperture{11}, true},
		{"low D code is not a selection", "D05*", nil, false},
		{"move", "X15000Y25000D02*", Move{Point{1.5, 2.5}}, true},
		{"draw", "X15000D01*", Draw{Point{1.5, 0}}, true},
		{"short draw code", "Y10000D1*", Draw{Point{0, 1}}, true},
		{"flash", "X10000Y10000D03*", Flash{Point{1, 1}}, true},
		{"comment", "G04 a comment*", nil, false},
		{"blank", "   ", nil, false},
		{"attribute", "%TF.FileFunction,Profile,NP*%", nil, false},
		{"quadrant mode", "G75*", nil, false},
		{"unterminated", "X100Y100D01", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got, ok := Step(InitialState(), tt.line)
			if ok != tt.wantOK {
				t.Fatalf("Step(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Step(%q) command mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestStepThreadsState(t *testing.T) {
	st := InitialState()
	if st.Format != DefaultFormat || st.Mode != Linear || st.X != 0 || st.Y != 0 {
		t.Fatalf("InitialState() = %+v", st)
	}

	st, _, _ = Step(st, "%FSLAX46Y46*%")
	if st.Format != (FormatSpec{4, 6}) {
		t.Fatalf("format not updated: %+v", st.Format)
	}

	st, _, _ = Step(st, "G02*")
	if st.Mode != ClockwiseArc {
		t.Fatalf("mode = %v, want ClockwiseArc", st.Mode)
	}

	st, cmd, ok := Step(st, "X2000000D02*")
	if !ok {
		t.Fatal("move not recognized")
	}
	if diff := cmp.Diff(Command(Move{Point{2, 0}}), cmd); diff != "" {
		t.Errorf("move mismatch (-want +got):\n%s", diff)
	}

	// Y alone keeps the previous X.
	st, cmd, _ = Step(st, "Y3000000D02*")
	if diff := cmp.Diff(Command(Move{Point{2, 3}}), cmd); diff != "" {
		t.Errorf("partial move mismatch (-want +got):\n%s", diff)
	}

	// Coordinates without an operation code still move the current point.
	st, _, ok = Step(st, "X5000000Y6000000*")
	if ok {
		t.Fatal("line without D code produced a command")
	}
	if st.Current() != (Point{5, 6}) {
		t.Errorf("current = %+v, want {5 6}", st.Current())
	}

	// Malformed coordinate leaves that axis unchanged.
	st, cmd, _ = Step(st, "XzzY7000000D01*")
	if diff := cmp.Diff(Command(Draw{Point{5, 7}}), cmd); diff != "" {
		t.Errorf("draw mismatch (-want +got):\n%s", diff)
	}
}

func TestStepArc(t *testing.T) {
	st := InitialState()
	st.Format = FormatSpec{4, 6}
	st.Mode = CounterClockwiseArc

	_, cmd, ok := Step(st, "X1000000Y1000000I0J1000000D01*")
	if !ok {
		t.Fatal("arc not recognized")
	}
	want := ArcDraw{EndPoint: Point{1, 1}, CenterOffset: Point{0, 1}}
	if diff := cmp.Diff(Command(want), cmd); diff != "" {
		t.Errorf("arc mismatch (-want +got):\n%s", diff)
	}

	// One offset missing degrades to a straight draw.
	_, cmd, _ = Step(st, "X1000000Y1000000I500000D01*")
	if _, isDraw := cmd.(Draw); !isDraw {
		t.Errorf("arc line without J = %T, want Draw", cmd)
	}

	// Linear mode ignores offsets.
	st.Mode = Linear
	_, cmd, _ = Step(st, "X1000000Y1000000I0J1000000D01*")
	if _, isDraw := cmd.(Draw); !isDraw {
		t.Errorf("linear line with offsets = %T, want Draw", cmd)
	}
}

func TestStepFirstMatchWins(t *testing.T) {
	// A mode token prefix takes the line, even if coordinates follow.
	st, cmd, ok := Step(InitialState(), "G03X10000Y10000D01*")
	if !ok {
		t.Fatal("line not recognized")
	}
	if diff := cmp.Diff(Command(SetInterpolationMode{CounterClockwiseArc}), cmd); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if st.Current() != (Point{}) {
		t.Errorf("position changed to %+v", st.Current())
	}

	// D10 on an operation-shaped line is neither a draw nor a selection.
	_, cmd, ok = Step(InitialState(), "X10000D10*")
	if ok {
		t.Errorf("X10000D10* produced %#v", cmd)
	}
}
