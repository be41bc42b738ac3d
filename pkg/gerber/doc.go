// Package gerber parses RS-274X Gerber text into a typed command sequence.
// Coordinate format and interpolation mode are threaded from line to line
// as an explicit State value so each step can be tested in isolation.
package gerber
