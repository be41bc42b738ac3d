package gerber

// Stats counts commands by kind.
type Stats struct {
	Moves   int
	Draws   int
	Arcs    int
	Flashes int
	Other   int
}

// Total returns the number of commands counted.
func (s Stats) Total() int {
	return s.Moves + s.Draws + s.Arcs + s.Flashes + s.Other
}

// Analyze counts the commands in cmds.
func Analyze(cmds []Command) Stats {
	var s Stats
	for _, c := range cmds {
		switch c.(type) {
		case Move:
			s.Moves++
		case Draw:
			s.Draws++
		case ArcDraw:
			s.Arcs++
		case Flash:
			s.Flashes++
		default:
			s.Other++
		}
	}
	return s
}

// UnitsOf returns the units set by the last unit command in cmds, or
// Millimeters when there is none.
func UnitsOf(cmds []Command) Units {
	u := Millimeters
	for _, c := range cmds {
		if su, ok := c.(SetUnits); ok {
			u = su.Units
		}
	}
	return u
}
