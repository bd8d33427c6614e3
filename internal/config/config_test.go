package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirrorfall/snag/internal/hint"
	"github.com/mirrorfall/snag/internal/style"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile("/nonexistent/path/config.toml")
	require.NoError(t, err)

	assert.Equal(t, "dvorak", cfg.Alphabet)
	assert.Equal(t, "leading", cfg.HintAlignment)
	assert.Equal(t, "{}", cfg.HintSurroundings)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"alphabet = \"qwerty\"\nunique_hint = true\nhint_fg = \"cyan\"\n",
	), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "qwerty", cfg.Alphabet)
	assert.True(t, cfg.UniqueHint)
	assert.Equal(t, "cyan", cfg.HintFg)
	assert.Equal(t, "bold", cfg.HintStyle, "untouched keys keep their defaults")
}

func TestLoadFileMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("alphabet = [broken"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestResolveDefaultsSucceed(t *testing.T) {
	cfg := Defaults()

	colors, alignment, hs, dest, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, style.HintLeading, alignment)
	assert.Equal(t, style.DecorationBold, hs.Decoration)
	assert.Equal(t, hint.DestinationTmux, dest)
	assert.Equal(t, style.ColorNone, colors.TextFg.Kind)
	assert.Equal(t, style.ColorNamed, colors.SpanFg.Kind)
}

func TestResolveUnknownColorFails(t *testing.T) {
	cfg := Defaults()
	cfg.SpanFg = "chartreuse-ish"

	_, _, _, _, err := cfg.Resolve()
	assert.Error(t, err)
}

func TestResolveSurroundStyleParsesPair(t *testing.T) {
	cfg := Defaults()
	cfg.HintStyle = "surround"
	cfg.HintSurroundings = "<>"

	_, _, hs, _, err := cfg.Resolve()
	require.NoError(t, err)

	assert.Equal(t, style.DecorationSurround, hs.Decoration)
	assert.Equal(t, '<', hs.SurroundOpen)
	assert.Equal(t, '>', hs.SurroundClose)
}

func TestResolveBadSurroundingsFails(t *testing.T) {
	cfg := Defaults()
	cfg.HintStyle = "surround"
	cfg.HintSurroundings = "{|}"

	_, _, _, _, err := cfg.Resolve()
	assert.ErrorIs(t, err, hint.ErrExpectedSurroundingPair)
}

func TestResolveBadDestinationFails(t *testing.T) {
	cfg := Defaults()
	cfg.DefaultDestination = "printer"

	_, _, _, _, err := cfg.Resolve()
	assert.Error(t, err)
}

func TestResolveClipboardDestination(t *testing.T) {
	cfg := Defaults()
	cfg.DefaultDestination = "clipboard"

	_, _, _, dest, err := cfg.Resolve()
	require.NoError(t, err)
	assert.Equal(t, hint.DestinationClipboard, dest)
}
