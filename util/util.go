package util

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// Gcd returns the greatest common divisor of a and b. Gcd(0, 0) is 0.
func Gcd[A constraints.Unsigned](a A, b A) A {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

// SplitLines splits s on "\n", dropping a "\r" left at the end of a line.
// A terminator at the very end of s does not start another (empty) line, so
// "a\nb\n" and "a\r\nb" both give [a b] and "" gives no lines at all.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// FirstField returns the first whitespace-delimited field of s, or false if
// s is blank.
func FirstField(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}
