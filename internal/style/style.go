// Package style holds the picker's small styling value types: a tagged
// Color enum and the hint alignment/decoration types, rendered to
// SGR-styled text through charmbracelet/lipgloss.
package style

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/mirrorfall/snag/internal/hint"
)

// ColorKind tags which Color variant is active.
type ColorKind int

const (
	ColorNone ColorKind = iota
	ColorNamed
	ColorIndexed
)

// Color is either absent, one of the eight named ANSI colors, or a
// 256-palette index.
type Color struct {
	Kind  ColorKind
	Value uint8
}

var None = Color{Kind: ColorNone}

// namedColors is the CLI-facing ANSI color-name table.
var namedColors = map[string]uint8{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// ParseColor resolves a --*-fg/--*-bg flag value: "none", a named ANSI
// color, or a bare palette index.
func ParseColor(s string) (Color, error) {
	if s == "" || s == "none" {
		return None, nil
	}
	if v, ok := namedColors[s]; ok {
		return Color{Kind: ColorNamed, Value: v}, nil
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx < 0 || idx > 255 {
		return Color{}, errors.Wrapf(hint.ErrUnknownColor, "color %q", s)
	}
	return Color{Kind: ColorIndexed, Value: uint8(idx)}, nil
}

// HintAlignment chooses which edge of a matched span the hint overlay is
// painted at.
type HintAlignment int

const (
	HintLeading HintAlignment = iota
	HintTrailing
)

func ParseHintAlignment(s string) (HintAlignment, error) {
	switch s {
	case "leading":
		return HintLeading, nil
	case "trailing":
		return HintTrailing, nil
	default:
		return 0, &hint.ExpectedEnumVariant{Option: s, Allowed: []string{"leading", "trailing"}}
	}
}

// HintDecoration is how the hint overlay is rendered: plain text, one of
// three SGR attributes, or wrapped in a pair of surrounding characters.
type HintDecoration int

const (
	DecorationPlain HintDecoration = iota
	DecorationBold
	DecorationItalic
	DecorationUnderline
	DecorationSurround
)

// HintStyle pairs a decoration with its surrounding-pair characters, used
// only when Decoration is DecorationSurround.
type HintStyle struct {
	Decoration    HintDecoration
	SurroundOpen  rune
	SurroundClose rune
}

func ParseHintStyle(s string) (HintStyle, error) {
	switch s {
	case "bold":
		return HintStyle{Decoration: DecorationBold}, nil
	case "italic":
		return HintStyle{Decoration: DecorationItalic}, nil
	case "underline":
		return HintStyle{Decoration: DecorationUnderline}, nil
	case "surround":
		return HintStyle{Decoration: DecorationSurround, SurroundOpen: '{', SurroundClose: '}'}, nil
	default:
		return HintStyle{}, &hint.ExpectedEnumVariant{Option: s, Allowed: []string{"bold", "italic", "underline", "surround"}}
	}
}

// ParseSurroundings validates a --hint-surroundings value: exactly two
// runes, the open and close characters.
func ParseSurroundings(s string) (rune, rune, error) {
	runes := []rune(s)
	if len(runes) != 2 {
		return 0, 0, hint.ErrExpectedSurroundingPair
	}
	return runes[0], runes[1], nil
}

// lipglossColor adapts a Color into a lipgloss terminal color, or the zero
// value (no color) for None.
func (c Color) lipglossColor() lipgloss.TerminalColor {
	if c.Kind == ColorNone {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(int(c.Value)))
}

// Faint renders text with the SGR faint attribute, used for the scroll
// indicator.
func Faint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

// Render applies fg/bg color and the hint decoration (if any) to text,
// producing the SGR-styled run the renderer paints.
func Render(text string, fg, bg Color, hs *HintStyle) string {
	st := lipgloss.NewStyle()
	if fg.Kind != ColorNone {
		st = st.Foreground(fg.lipglossColor())
	}
	if bg.Kind != ColorNone {
		st = st.Background(bg.lipglossColor())
	}

	if hs != nil {
		switch hs.Decoration {
		case DecorationBold:
			st = st.Bold(true)
		case DecorationItalic:
			st = st.Italic(true)
		case DecorationUnderline:
			st = st.Underline(true)
		case DecorationSurround:
			text = string(hs.SurroundOpen) + text + string(hs.SurroundClose)
		}
	}

	return st.Render(text)
}
