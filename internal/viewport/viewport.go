// Package viewport keeps a focused element on-screen as wrapped content
// scrolls, and maps logical line positions onto wrapped-line screen
// coordinates.
package viewport

import "github.com/mirrorfall/snag/internal/displaywidth"

// WrappedLine records where a logical line starts in wrapped-content row
// space; the number of rows it occupies is derived on demand from its
// display width.
type WrappedLine struct {
	PosY int
}

// ComputeWrappedLines precomputes the starting row of every logical
// line, given the lines and the terminal width they wrap at.
func ComputeWrappedLines(lines []string, termWidth int) []WrappedLine {
	out := make([]WrappedLine, len(lines))
	row := 0
	for i, line := range lines {
		out[i] = WrappedLine{PosY: row}
		w := displaywidth.String(line)
		row += displaywidth.Rows(w, termWidth)
	}
	return out
}

// TotalContentHeight returns the number of wrapped-content rows occupied
// by lines in total.
func TotalContentHeight(lines []string, wrapped []WrappedLine, termWidth int) int {
	if len(lines) == 0 {
		return 0
	}
	last := len(lines) - 1
	w := displaywidth.String(lines[last])
	return wrapped[last].PosY + displaywidth.Rows(w, termWidth)
}

// MapToWrappedSpace converts a (displayCol, lineIndex) position into
// wrapped-space (col, row) coordinates.
func MapToWrappedSpace(wrapped []WrappedLine, displayCol, lineIndex, termWidth int) (int, int) {
	if termWidth <= 0 {
		termWidth = 1
	}
	col := displayCol % termWidth
	row := wrapped[lineIndex].PosY + displayCol/termWidth
	return col, row
}

// Viewport tracks which wrapped-content rows are currently visible.
type Viewport struct {
	TopRow int
	Height int
}

// New creates a viewport starting scrolled to the top.
func New(height int) *Viewport {
	return &Viewport{TopRow: 0, Height: height}
}

// IsVisible reports whether contentRow is within [TopRow, TopRow+Height).
func (v *Viewport) IsVisible(contentRow int) bool {
	return contentRow >= v.TopRow && contentRow < v.TopRow+v.Height
}

// ScreenY converts a content row to a 1-indexed screen row, or (_, false)
// if the row is not currently visible.
func (v *Viewport) ScreenY(contentRow int) (int, bool) {
	if !v.IsVisible(contentRow) {
		return 0, false
	}
	return contentRow - v.TopRow + 1, true
}

// EnsureVisible scrolls the minimum amount necessary so contentRow is
// visible, reporting whether a scroll occurred.
func (v *Viewport) EnsureVisible(contentRow int) bool {
	if contentRow < v.TopRow {
		v.TopRow = contentRow
		return true
	}
	if contentRow >= v.TopRow+v.Height {
		v.TopRow = contentRow - v.Height + 1
		return true
	}
	return false
}

// ScrollUp moves the top row up by lines, clamped at 0.
func (v *Viewport) ScrollUp(lines int) bool {
	if v.TopRow <= 0 {
		return false
	}
	next := v.TopRow - lines
	if next < 0 {
		next = 0
	}
	v.TopRow = next
	return true
}

// ScrollDown moves the top row down by lines, clamped so the viewport
// never scrolls past the last page of maxContentHeight rows.
func (v *Viewport) ScrollDown(lines, maxContentHeight int) bool {
	maxTop := maxContentHeight - v.Height
	if maxTop < 0 {
		maxTop = 0
	}
	if v.TopRow >= maxTop {
		return false
	}
	next := v.TopRow + lines
	if next > maxTop {
		next = maxTop
	}
	v.TopRow = next
	return true
}
