package grid

import "github.com/mattn/go-runewidth"

// widthCond is pinned so results do not depend on the process locale.
// Ambiguous East Asian width counts as double.
var widthCond = &runewidth.Condition{EastAsianWidth: true}

// RuneWidth returns 2 for wide glyphs and 1 for everything else. Zero-width
// and control codepoints still occupy a cell of their own.
func RuneWidth(r rune) int {
	if widthCond.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// StringWidth returns the columns Put would consume for s on an unbounded row.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}
