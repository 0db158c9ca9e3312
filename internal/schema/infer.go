package schema

import "strings"

// InferType guesses a column type from a single sample value.
//
// A value is Integer when every character is an ASCII digit, Real when it
// becomes all digits after dropping at most one '.', and Text otherwise.
// Signs, exponents, surrounding whitespace and empty strings all fall through
// to Text.
func InferType(value string) Type {
	if isDigits(value) {
		return Integer
	}
	if isDigits(strings.Replace(value, ".", "", 1)) {
		return Real
	}
	return Text
}

// Widen returns the narrowest type able to hold values of both a and b.
// The order is Integer < Real < Text.
func Widen(a, b Type) Type {
	if a == Text || b == Text {
		return Text
	}
	if a == Real || b == Real {
		return Real
	}
	return Integer
}

// InferTypes infers one type per position of the sample row.
func InferTypes(sample []string) []Type {
	out := make([]Type, len(sample))
	for i, v := range sample {
		out[i] = InferType(v)
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
