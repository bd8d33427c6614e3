// Package bridge talks to the host tmux server by shelling out to the
// tmux binary — no control-mode protocol client — to capture pane
// content, set the paste buffer, show status messages, and swap a
// transient picker window over the origin pane.
package bridge

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/mirrorfall/snag/internal/hint"
)

// Config controls how the bridge talks to the host tmux session.
type Config struct {
	// HonorHostCaptureRegion makes OptionCaptureRegion read the host's
	// configured @snag-capture-region option. Defaults to false: the invoking key
	// binding decides the region instead.
	HonorHostCaptureRegion bool
}

// Bridge runs tmux commands for a single pane.
type Bridge struct {
	cfg Config
	run func(name string, args ...string) ([]byte, error)
}

// New constructs a Bridge that shells out to the real tmux binary.
func New(cfg Config) *Bridge {
	return &Bridge{cfg: cfg, run: runCommand}
}

func runCommand(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrapf(err, "tmux %s: %s", strings.Join(args, " "), errOut.String())
	}
	return out.Bytes(), nil
}

// CaptureRegion selects how much of a pane's content CapturePane reads.
type CaptureRegion int

const (
	// CaptureVisibleArea captures what is currently on screen, the
	// default behavior of `tmux capture-pane`.
	CaptureVisibleArea CaptureRegion = iota
	// CaptureEntireHistory captures the whole scrollback, sending
	// `-S - -E -` to `tmux capture-pane`.
	CaptureEntireHistory
)

func (r CaptureRegion) String() string {
	if r == CaptureEntireHistory {
		return "entire-history"
	}
	return "visible-area"
}

// ParseCaptureRegion resolves a @snag-capture-region option value.
func ParseCaptureRegion(s string) (CaptureRegion, error) {
	switch s {
	case "", "visible-area":
		return CaptureVisibleArea, nil
	case "entire-history":
		return CaptureEntireHistory, nil
	default:
		return 0, &hint.ExpectedEnumVariant{
			Option:  s,
			Allowed: []string{"visible-area", "entire-history"},
		}
	}
}

// CapturePane returns the content of the given pane (or the current
// pane if target is empty) as lines, covering the requested region.
func (b *Bridge) CapturePane(target string, region CaptureRegion) ([]string, error) {
	args := []string{"capture-pane", "-p", "-e"}
	if region == CaptureEntireHistory {
		args = append(args, "-S", "-", "-E", "-")
	}
	if target != "" {
		args = append(args, "-t", target)
	}
	out, err := b.run("tmux", args...)
	if err != nil {
		return nil, err
	}
	return splitLines(string(out)), nil
}

// OptionCaptureRegion reads and parses @snag-capture-region from the
// host's tmux options store. When the switch is off the option is not
// read at all and the visible area stands.
func (b *Bridge) OptionCaptureRegion(target string) (CaptureRegion, bool, error) {
	if !b.cfg.HonorHostCaptureRegion {
		return CaptureVisibleArea, false, nil
	}
	args := []string{"show-option", "-gqv", "@snag-capture-region"}
	if target != "" {
		args = append(args, "-t", target)
	}
	out, err := b.run("tmux", args...)
	if err != nil {
		return CaptureVisibleArea, false, err
	}
	v := strings.TrimSpace(string(out))
	if v == "" {
		return CaptureVisibleArea, false, nil
	}
	region, err := ParseCaptureRegion(v)
	if err != nil {
		return CaptureVisibleArea, false, err
	}
	return region, true, nil
}

// SetBuffer loads text into the tmux paste buffer, from which an
// uppercase selection is pasted back into the origin pane.
func (b *Bridge) SetBuffer(text string) error {
	_, err := b.run("tmux", "set-buffer", "--", text)
	return err
}

// PasteBuffer pastes the current tmux buffer into the target pane, the
// host-side half of an uppercase selection.
func (b *Bridge) PasteBuffer(target string) error {
	args := []string{"paste-buffer"}
	if target != "" {
		args = append(args, "-t", target)
	}
	_, err := b.run("tmux", args...)
	return err
}

// OptionPatternNames reads the packed @snag-pattern-names option from
// the host's tmux options store and splits it into individual pattern
// names.
func (b *Bridge) OptionPatternNames(target string) ([]string, error) {
	args := []string{"show-option", "-gqv", "@snag-pattern-names"}
	if target != "" {
		args = append(args, "-t", target)
	}
	out, err := b.run("tmux", args...)
	if err != nil {
		return nil, err
	}
	return SplitPackedOption(string(out))
}

// DisplayMessage shows a short status line in the host's tmux status
// area, used when the output destination is toggled.
func (b *Bridge) DisplayMessage(msg string) error {
	_, err := b.run("tmux", "display-message", msg)
	return err
}

// SplitPackedOption splits a packed tmux user option string (e.g. a
// @snag-pattern-names value holding several space-separated, possibly
// quoted pattern names) into individual values.
func SplitPackedOption(packed string) ([]string, error) {
	if strings.TrimSpace(packed) == "" {
		return nil, nil
	}
	p := shellwords.NewParser()
	args, err := p.Parse(packed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse packed option %q", packed)
	}
	return args, nil
}

// NewTransientName generates a collision-free name for a temporary tmux
// window, scratch file, or wait-for channel.
func NewTransientName(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
