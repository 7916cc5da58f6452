package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits s into lines. CRLF is normalised, trailing newlines are
// dropped and inner blank lines are kept.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Groups splits s into blank-line separated sections, each returned as its lines.
func Groups(s string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, line := range Lines(s) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Split splits s by sep, trims each field and drops empty ones.
func Split(s, sep string) []string {
	var out []string
	for _, f := range strings.Split(s, sep) {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Fields splits line around runs of white space.
func Fields(line string) []string {
	return strings.Fields(line)
}

// Int parses a decimal int, wrapping failures with ErrMalformedInput.
func Int(field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, field)
	}
	return v, nil
}

// Int64 parses a decimal int64, wrapping failures with ErrMalformedInput.
func Int64(field string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, field)
	}
	return v, nil
}

// Ints parses every field with Int. The first failure is returned.
func Ints(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := Int(f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
