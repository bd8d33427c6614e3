package bridge

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Swapper runs the picker in a transient tmux window and swaps it in
// place of the origin pane, so the origin never flickers through an
// alternate-screen transition. The sequence is: locate the active pane,
// spawn a detached window running the picker over a capture of that
// pane, swap the two panes, block on a wait-for signal the picker raises
// when done, then read the selection back from a scratch file.
type Swapper struct {
	bridge *Bridge

	activePaneID   string
	paneInCopyMode bool
	paneHeight     int
	scrollPosition int
	pickerPaneID   string

	signal       string
	selectionTmp string
}

// NewSwapper prepares a swap cycle against the given bridge. Transient
// resource names are UUID-based so concurrent invocations in different
// panes never collide.
func NewSwapper(b *Bridge) *Swapper {
	name := NewTransientName("snag")
	return &Swapper{
		bridge:       b,
		signal:       name + "-finished",
		selectionTmp: "/tmp/" + name,
	}
}

// FindActivePane records which pane the picker was invoked from, along
// with its copy-mode scroll state so the capture can cover the scrolled
// region rather than just the live screen.
func (s *Swapper) FindActivePane() error {
	out, err := s.bridge.run("tmux", "list-panes", "-F",
		"#{pane_id}:#{?pane_in_mode,1,0}:#{pane_height}:#{scroll_position}:#{?pane_active,active,nope}")
	if err != nil {
		return err
	}

	for _, line := range splitLines(string(out)) {
		fields := strings.Split(line, ":")
		if len(fields) < 5 || fields[4] != "active" {
			continue
		}
		s.activePaneID = fields[0]
		s.paneInCopyMode = fields[1] == "1"
		if s.paneInCopyMode {
			s.paneHeight, _ = strconv.Atoi(fields[2])
			s.scrollPosition, _ = strconv.Atoi(fields[3])
		}
		return nil
	}
	return errors.New("no active tmux pane found")
}

// SpawnPickerWindow creates a detached window whose single pane captures
// the origin pane, pipes it through the picker binary with the given
// extra arguments, swaps itself back, and raises the completion signal.
func (s *Swapper) SpawnPickerWindow(pickerPath string, pickerArgs []string) error {
	if s.activePaneID == "" {
		return errors.New("FindActivePane must run before SpawnPickerWindow")
	}

	capture := "tmux capture-pane -t " + s.activePaneID + " -p"
	if s.paneInCopyMode {
		start := -s.scrollPosition
		end := s.paneHeight - s.scrollPosition - 1
		capture += " -S " + strconv.Itoa(start) + " -E " + strconv.Itoa(end)
	}

	args := append([]string{"--output-file", s.selectionTmp}, pickerArgs...)
	paneCommand := capture + " | " + pickerPath + " " + strings.Join(args, " ") +
		"; tmux swap-pane -t " + s.activePaneID +
		"; tmux wait-for -S " + s.signal

	out, err := s.bridge.run("tmux", "new-window", "-P", "-d", "-n", "[snag]", paneCommand)
	if err != nil {
		return err
	}
	s.pickerPaneID = strings.TrimSpace(string(out))
	return nil
}

// SwapPanes exchanges the origin pane with the picker pane.
func (s *Swapper) SwapPanes() error {
	_, err := s.bridge.run("tmux", "swap-pane", "-d", "-s", s.activePaneID, "-t", s.pickerPaneID)
	return err
}

// Wait blocks until the picker pane raises the completion signal.
func (s *Swapper) Wait() error {
	_, err := s.bridge.run("tmux", "wait-for", s.signal)
	return err
}

// RetrieveSelection reads back the picker's output file and removes it.
// The file holds "true:<text>" or "false:<text>", the boolean being the
// uppercase-modifier flag. A missing file means the pick was aborted.
func (s *Swapper) RetrieveSelection() (text string, uppercased bool, ok bool, err error) {
	raw, readErr := os.ReadFile(s.selectionTmp)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return "", false, false, nil
		}
		return "", false, false, errors.Wrap(readErr, "read selection file")
	}
	defer os.Remove(s.selectionTmp)

	flag, rest, found := strings.Cut(strings.TrimRight(string(raw), "\n"), ":")
	if !found {
		return "", false, false, errors.Errorf("malformed selection file %s", s.selectionTmp)
	}
	return rest, flag == "true", true, nil
}
