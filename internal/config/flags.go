package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the CLI surface onto fs, with defaults seeded from
// cfg (already loaded from the TOML defaults file). Taking a bare
// FlagSet rather than a *cobra.Command keeps this usable from tests.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Alphabet, "alphabet", cfg.Alphabet, "hint alphabet layout")
	fs.BoolVar(&cfg.AllPatterns, "all-patterns", cfg.AllPatterns, "match every built-in pattern")
	fs.StringArrayVar(&cfg.PatternNames, "pattern-name", cfg.PatternNames, "match only this built-in pattern (repeatable)")
	fs.StringArrayVar(&cfg.CustomPatterns, "custom-pattern", cfg.CustomPatterns, "match this custom regex, must contain a capture group (repeatable)")
	fs.BoolVar(&cfg.Reverse, "reverse", cfg.Reverse, "assign hints starting from the last match")
	fs.BoolVar(&cfg.UniqueHint, "unique-hint", cfg.UniqueHint, "give identical span text the same hint")
	fs.BoolVar(&cfg.FocusWrapAround, "focus-wrap-around", cfg.FocusWrapAround, "wrap focus navigation at the ends")
	fs.StringVar(&cfg.HintAlignment, "hint-alignment", cfg.HintAlignment, "leading|trailing")
	fs.StringVar(&cfg.HintStyle, "hint-style", cfg.HintStyle, "bold|italic|underline|surround")
	fs.StringVar(&cfg.HintSurroundings, "hint-surroundings", cfg.HintSurroundings, "exactly two characters, used when --hint-style=surround")

	fs.StringVar(&cfg.TextFg, "text-fg", cfg.TextFg, "named ANSI color or \"none\"")
	fs.StringVar(&cfg.TextBg, "text-bg", cfg.TextBg, "named ANSI color or \"none\"")
	fs.StringVar(&cfg.SpanFg, "span-fg", cfg.SpanFg, "named ANSI color or \"none\"")
	fs.StringVar(&cfg.SpanBg, "span-bg", cfg.SpanBg, "named ANSI color or \"none\"")
	fs.StringVar(&cfg.FocusedFg, "focused-fg", cfg.FocusedFg, "named ANSI color or \"none\"")
	fs.StringVar(&cfg.FocusedBg, "focused-bg", cfg.FocusedBg, "named ANSI color or \"none\"")
	fs.StringVar(&cfg.HintFg, "hint-fg", cfg.HintFg, "named ANSI color or \"none\"")
	fs.StringVar(&cfg.HintBg, "hint-bg", cfg.HintBg, "named ANSI color or \"none\"")

	fs.BoolVar(&cfg.HonorHostCaptureRegion, "honor-host-capture-region", cfg.HonorHostCaptureRegion,
		"respect the host multiplexer's configured capture region instead of letting the invoking binding decide it")
}
