// Package present is the view controller: it ties the hint model,
// viewport, renderer and input state machine into a single interactive
// loop that runs until the user picks a span or gives up.
package present

import (
	"github.com/mirrorfall/snag/internal/displaywidth"
	"github.com/mirrorfall/snag/internal/hint"
	"github.com/mirrorfall/snag/internal/input"
	"github.com/mirrorfall/snag/internal/render"
	"github.com/mirrorfall/snag/internal/style"
	"github.com/mirrorfall/snag/internal/viewport"
)

// Colors bundles the eight configurable paint colors.
type Colors struct {
	TextFg, TextBg       style.Color
	SpanFg, SpanBg       style.Color
	FocusedFg, FocusedBg style.Color
	HintFg, HintBg       style.Color
}

// Options bundles every Present parameter other than the model and the
// terminal.
type Options struct {
	FocusWrapAround    bool
	DefaultDestination hint.OutputDestination
	Colors             Colors
	HintAlignment      style.HintAlignment
	HintStyle          *style.HintStyle

	// Notify, when set, is called with a short status message whenever
	// the output destination is toggled, so the caller can surface it on
	// the host multiplexer's status line.
	Notify func(msg string)
}

// Present runs the interactive picker to completion and returns the
// user's selection, or (nil, nil) if the user cancelled or there was
// nothing to pick.
func Present(model *hint.Model, term *render.Terminal, opts Options) (*hint.Selection, error) {
	if model.Empty() {
		return nil, nil
	}

	size := term.Size()
	wrapped := viewport.ComputeWrappedLines(model.Lines, size.Width)
	totalRows := viewport.TotalContentHeight(model.Lines, wrapped, size.Width)
	vp := viewport.New(size.Height)

	state := input.New(model, opts.FocusWrapAround, opts.DefaultDestination)
	vp.EnsureVisible(spanContentRow(model, wrapped, size.Width, state.FocusIndex()))

	reader := input.NewReader(term.InFd())

	fullRepaint(term, model, wrapped, vp, size.Width, state, opts, totalRows)
	if err := term.Flush(); err != nil {
		return nil, err
	}

	for {
		key, err := reader.ReadKey()
		if err != nil {
			return nil, err
		}

		outcome := state.Handle(key)

		switch outcome.Kind {
		case input.Exiting:
			return nil, nil

		case input.Selected:
			return &outcome.Selection, nil

		case input.AwaitingKey:
			if outcome.DestinationToggled {
				state.ToggleDestination()
				if opts.Notify != nil {
					opts.Notify("copying to " + state.Destination().String())
				}
			}
			if outcome.ScrollPages != 0 {
				half := size.Height / 2
				if half < 1 {
					half = 1
				}
				if outcome.ScrollPages > 0 {
					vp.ScrollDown(half, totalRows)
				} else {
					vp.ScrollUp(half)
				}
				fullRepaint(term, model, wrapped, vp, size.Width, state, opts, totalRows)
			} else if outcome.Focus.Moved {
				row := spanContentRow(model, wrapped, size.Width, outcome.Focus.NewIndex)
				if vp.EnsureVisible(row) {
					fullRepaint(term, model, wrapped, vp, size.Width, state, opts, totalRows)
				} else {
					diffRepaint(term, model, wrapped, vp, size.Width, outcome.Focus.OldIndex, outcome.Focus.NewIndex, opts)
				}
			}
		}

		if err := term.Flush(); err != nil {
			return nil, err
		}
	}
}

func spanContentRow(model *hint.Model, wrapped []viewport.WrappedLine, termWidth, spanIndex int) int {
	s := model.Spans[spanIndex]
	prefixWidth := displaywidth.Prefix(model.Lines[s.Y], s.X)
	_, row := viewport.MapToWrappedSpace(wrapped, prefixWidth, s.Y, termWidth)
	return row
}

func spanScreenCol(wrapped []viewport.WrappedLine, model *hint.Model, termWidth, spanIndex int) int {
	s := model.Spans[spanIndex]
	prefixWidth := displaywidth.Prefix(model.Lines[s.Y], s.X)
	col, _ := viewport.MapToWrappedSpace(wrapped, prefixWidth, s.Y, termWidth)
	return col
}

// fullRepaint clears the screen and paints the three layers in order:
// base text, spans, hint overlays (the per-span painter folds layers 2
// and 3 together), then the scroll indicator.
func fullRepaint(term *render.Terminal, model *hint.Model, wrapped []viewport.WrappedLine, vp *viewport.Viewport, termWidth int, state *input.State, opts Options, totalRows int) {
	term.ClearScreen()
	paintBaseText(term, model, wrapped, vp, termWidth, opts)
	for i := range model.Spans {
		paintSpan(term, model, wrapped, vp, termWidth, i, i == state.FocusIndex(), opts)
	}
	paintIndicator(term, vp, totalRows, termWidth)
}

// diffRepaint repaints only the previously and newly focused spans, for
// focus changes that did not scroll the viewport.
func diffRepaint(term *render.Terminal, model *hint.Model, wrapped []viewport.WrappedLine, vp *viewport.Viewport, termWidth, oldIndex, newIndex int, opts Options) {
	paintSpan(term, model, wrapped, vp, termWidth, oldIndex, false, opts)
	paintSpan(term, model, wrapped, vp, termWidth, newIndex, true, opts)
}

// paintBaseText is Layer 1: the underlying buffer text, trimmed of
// trailing whitespace, skipping lines entirely outside the viewport.
func paintBaseText(term *render.Terminal, model *hint.Model, wrapped []viewport.WrappedLine, vp *viewport.Viewport, termWidth int, opts Options) {
	for i, line := range model.Lines {
		trimmed := trimTrailingSpace(line)
		if trimmed == "" {
			continue
		}
		w := displaywidth.String(trimmed)
		rows := displaywidth.Rows(w, termWidth)
		base := wrapped[i].PosY
		if base+rows-1 < vp.TopRow || base > vp.TopRow+vp.Height-1 {
			continue
		}
		for sub := 0; sub < rows; sub++ {
			row := base + sub
			y, ok := vp.ScreenY(row)
			if !ok {
				continue
			}
			chunk := sliceByDisplayRange(trimmed, sub*termWidth, (sub+1)*termWidth)
			term.MoveTo(y, 1)
			term.WriteStyled(style.Render(chunk, opts.Colors.TextFg, opts.Colors.TextBg, nil))
		}
	}
}

// paintSpan paints Layer 2 (the matched text) and, unless focused,
// Layer 3 (the hint overlay) for a single span.
func paintSpan(term *render.Terminal, model *hint.Model, wrapped []viewport.WrappedLine, vp *viewport.Viewport, termWidth, spanIndex int, focused bool, opts Options) {
	s := model.Spans[spanIndex]
	row := spanContentRow(model, wrapped, termWidth, spanIndex)
	col := spanScreenCol(wrapped, model, termWidth, spanIndex)
	y, ok := vp.ScreenY(row)
	if !ok {
		return
	}

	fg, bg := opts.Colors.SpanFg, opts.Colors.SpanBg
	if focused {
		fg, bg = opts.Colors.FocusedFg, opts.Colors.FocusedBg
	}

	term.MoveTo(y, col+1)
	term.WriteStyled(style.Render(s.Text, fg, bg, nil))

	if focused {
		return
	}

	hintCol := col
	if opts.HintAlignment == style.HintTrailing {
		hintCol = col + displaywidth.String(s.Text) - displaywidth.String(s.Hint)
		if hintCol < col {
			hintCol = col
		}
	}
	term.MoveTo(y, hintCol+1)
	term.WriteStyled(style.Render(s.Hint, opts.Colors.HintFg, opts.Colors.HintBg, opts.HintStyle))
}

// paintIndicator paints the "[top+1/max_top+1]" scroll indicator in a
// faint style at the bottom-right when content exceeds the viewport.
func paintIndicator(term *render.Terminal, vp *viewport.Viewport, totalRows, termWidth int) {
	if totalRows <= vp.Height {
		return
	}
	maxTop := totalRows - vp.Height
	text := indicatorText(vp.TopRow+1, maxTop+1)
	col := termWidth - len(text) + 1
	if col < 1 {
		col = 1
	}
	term.MoveTo(vp.Height, col)
	term.WriteStyled(style.Faint(text))
}

func indicatorText(top, maxTop int) string {
	return "[" + itoa(top) + "/" + itoa(maxTop) + "]"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func trimTrailingSpace(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t' || s[i-1] == '\r') {
		i--
	}
	return s[:i]
}

// sliceByDisplayRange returns the substring of s whose display-width
// range is [from, to), the piece of a wrapped line that lands on one
// screen row.
func sliceByDisplayRange(s string, from, to int) string {
	col := 0
	start := -1
	end := len(s)
	for i, r := range s {
		if col >= from && start == -1 {
			start = i
		}
		col += displaywidth.Rune(r, col)
		if col >= to {
			end = i + runeLen(r)
			break
		}
	}
	if start == -1 {
		return ""
	}
	return s[start:end]
}

func runeLen(r rune) int {
	if r < 0x80 {
		return 1
	}
	if r < 0x800 {
		return 2
	}
	if r < 0x10000 {
		return 3
	}
	return 4
}
