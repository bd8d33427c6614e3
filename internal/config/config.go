// Package config builds the runtime Config the rest of the program uses,
// from an optional TOML defaults file merged with CLI flag overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/mirrorfall/snag/internal/hint"
	"github.com/mirrorfall/snag/internal/style"
)

// Config is the fully resolved set of options present() and build_model
// need, after merging the TOML defaults file with CLI flags.
type Config struct {
	Alphabet          string   `toml:"alphabet"`
	AllPatterns       bool     `toml:"all_patterns"`
	PatternNames      []string `toml:"pattern_names"`
	CustomPatterns    []string `toml:"custom_patterns"`
	Reverse           bool     `toml:"reverse"`
	UniqueHint        bool     `toml:"unique_hint"`
	FocusWrapAround   bool     `toml:"focus_wrap_around"`
	HintAlignment     string   `toml:"hint_alignment"`
	HintStyle         string   `toml:"hint_style"`
	HintSurroundings  string   `toml:"hint_surroundings"`
	DefaultDestination string  `toml:"default_destination"`

	TextFg    string `toml:"text_fg"`
	TextBg    string `toml:"text_bg"`
	SpanFg    string `toml:"span_fg"`
	SpanBg    string `toml:"span_bg"`
	FocusedFg string `toml:"focused_fg"`
	FocusedBg string `toml:"focused_bg"`
	HintFg    string `toml:"hint_fg"`
	HintBg    string `toml:"hint_bg"`

	HonorHostCaptureRegion bool `toml:"honor_host_capture_region"`
}

// Defaults returns the documented CLI defaults.
func Defaults() Config {
	return Config{
		Alphabet:           "dvorak",
		HintAlignment:      "leading",
		HintStyle:          "bold",
		HintSurroundings:   "{}",
		DefaultDestination: "tmux",
		TextFg:             "none",
		TextBg:             "none",
		SpanFg:             "green",
		SpanBg:             "none",
		FocusedFg:          "black",
		FocusedBg:          "yellow",
		HintFg:             "red",
		HintBg:             "none",
	}
}

// DefaultConfigPath is where LoadFile looks when no explicit path is
// given.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "snag", "config.toml")
}

// LoadFile decodes a TOML defaults file on top of Defaults(). A missing
// file is not an error: the documented defaults stand on their own.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "decode config file %s", path)
	}
	return cfg, nil
}

// ResolvedColors is the parsed form of the eight color strings.
type ResolvedColors struct {
	TextFg, TextBg       style.Color
	SpanFg, SpanBg       style.Color
	FocusedFg, FocusedBg style.Color
	HintFg, HintBg       style.Color
}

// Resolve validates and parses the color, hint alignment, hint style,
// hint surroundings (only when the style is surround) and default
// destination options into their typed forms, surfacing the first error
// it finds. The alphabet and pattern options are not checked here;
// hint.BuildModel rejects bad ones. This runs before the alternate
// screen is ever entered, so a bad option is a plain stderr diagnostic.
func (c Config) Resolve() (ResolvedColors, style.HintAlignment, *style.HintStyle, hint.OutputDestination, error) {
	var rc ResolvedColors
	var err error

	fields := []struct {
		name string
		dst  *style.Color
	}{
		{c.TextFg, &rc.TextFg}, {c.TextBg, &rc.TextBg},
		{c.SpanFg, &rc.SpanFg}, {c.SpanBg, &rc.SpanBg},
		{c.FocusedFg, &rc.FocusedFg}, {c.FocusedBg, &rc.FocusedBg},
		{c.HintFg, &rc.HintFg}, {c.HintBg, &rc.HintBg},
	}
	for _, f := range fields {
		*f.dst, err = style.ParseColor(f.name)
		if err != nil {
			return ResolvedColors{}, 0, nil, 0, err
		}
	}

	alignment, err := style.ParseHintAlignment(c.HintAlignment)
	if err != nil {
		return ResolvedColors{}, 0, nil, 0, err
	}

	hs, err := style.ParseHintStyle(c.HintStyle)
	if err != nil {
		return ResolvedColors{}, 0, nil, 0, err
	}
	if hs.Decoration == style.DecorationSurround {
		open, close, err := style.ParseSurroundings(c.HintSurroundings)
		if err != nil {
			return ResolvedColors{}, 0, nil, 0, err
		}
		hs.SurroundOpen, hs.SurroundClose = open, close
	}

	dest := hint.DestinationTmux
	if c.DefaultDestination == "clipboard" {
		dest = hint.DestinationClipboard
	} else if c.DefaultDestination != "tmux" && c.DefaultDestination != "" {
		return ResolvedColors{}, 0, nil, 0, &hint.ExpectedEnumVariant{
			Option:  c.DefaultDestination,
			Allowed: []string{"tmux", "clipboard"},
		}
	}

	return rc, alignment, &hs, dest, nil
}
