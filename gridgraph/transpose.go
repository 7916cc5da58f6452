package gridgraph

import "strings"

// Transpose returns the columns of lines as strings, top to bottom.
// Lines shorter than the longest one are treated as right-padded with spaces,
// so the result always has max(len(line)) entries of len(lines) bytes.
//
//	"ab"      "a1"
//	"1"   →   "b "
func Transpose(lines []string) []string {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	cols := make([]string, width)
	buf := make([]byte, len(lines))
	for c := 0; c < width; c++ {
		for r, l := range lines {
			if c < len(l) {
				buf[r] = l[c]
			} else {
				buf[r] = ' '
			}
		}
		cols[c] = string(buf)
	}
	return cols
}

// IsBlank reports whether s consists only of spaces.
func IsBlank(s string) bool {
	return strings.Trim(s, " ") == ""
}
