// Package displaywidth computes the on-screen width of text the way a
// terminal renders it: tabs expand to the next multiple-of-8 column and
// runes are measured by East-Asian width rather than counted one-for-one.
package displaywidth

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const tabStop = 8

// Rune returns the display width of r when it appears at column col.
// Tabs are column-dependent; everything else is not.
func Rune(r rune, col int) int {
	if r == '\t' {
		return tabStop - col%tabStop
	}
	if w := runewidth.RuneWidth(r); w >= 0 {
		return w
	}
	// go-runewidth reports -1 for a handful of combining/control runes it
	// treats as invalid; fall back to the grapheme-cluster library rather
	// than letting a single rune desync column tracking.
	return uniseg.StringWidth(string(r))
}

// String returns the total display width of s, expanding tabs as they
// would appear starting at column 0.
func String(s string) int {
	col := 0
	for _, r := range s {
		col += Rune(r, col)
	}
	return col
}

// Prefix returns the display width of the first n bytes of s (s[:n] must
// be a valid rune-boundary slice), used to map a span's byte column onto
// a screen column.
func Prefix(s string, n int) int {
	return String(s[:n])
}

// Rows returns how many screen rows a line of display width w occupies
// at terminal width termWidth: 1 + max(0, w-1)/termWidth.
func Rows(w, termWidth int) int {
	if termWidth <= 0 {
		return 1
	}
	if w <= 0 {
		return 1
	}
	return 1 + (w-1)/termWidth
}
