package gerber

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNumber is wrapped by every DecodeError.
var ErrInvalidNumber = errors.New("invalid number")

// DecodeError reports a coordinate token that could not be decoded.
type DecodeError struct {
	Token string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("gerber: invalid coordinate %q: %v", e.Token, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode converts a raw coordinate token to a float using f.
//
// Tokens carrying a decimal point are parsed as-is. Other tokens are fixed
// point: the magnitude is left-padded with zeros to f.TotalDigits() and the
// point is inserted f.DecimalDigits from the right.
func Decode(raw string, f FormatSpec) (float64, error) {
	if strings.Contains(raw, ".") {
		if !isDecimal(raw) {
			return 0, &DecodeError{Token: raw, Err: ErrInvalidNumber}
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, &DecodeError{Token: raw, Err: ErrInvalidNumber}
		}
		return v, nil
	}

	sign := ""
	digits := raw
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if !isDigits(digits) {
		return 0, &DecodeError{Token: raw, Err: ErrInvalidNumber}
	}

	if pad := f.TotalDigits() - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	if digits == "" {
		return 0, &DecodeError{Token: raw, Err: ErrInvalidNumber}
	}
	if f.DecimalDigits > 0 {
		cut := len(digits) - f.DecimalDigits
		digits = digits[:cut] + "." + digits[cut:]
	}

	v, err := strconv.ParseFloat(sign+digits, 64)
	if err != nil {
		return 0, &DecodeError{Token: raw, Err: ErrInvalidNumber}
	}
	return v, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDecimal reports whether s is an optional sign followed by digits with
// exactly one decimal point and at least one digit.
func isDecimal(s string) bool {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	whole, frac, ok := strings.Cut(s, ".")
	return ok && whole+frac != "" && isDigits(whole) && isDigits(frac)
}
