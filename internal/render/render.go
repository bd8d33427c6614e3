// Package render is the terminal backend: alternate screen, raw mode,
// cursor visibility, terminal sizing, and the low-level paint
// primitives. Raw mode goes through golang.org/x/term, sizing through
// the TIOCGWINSZ ioctl, and tty detection through mattn/go-isatty.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	altScreenEnter = "\x1b[?1049h"
	altScreenExit  = "\x1b[?1049l"
	cursorHide     = "\x1b[?25l"
	cursorShow     = "\x1b[?25h"
	clearScreen    = "\x1b[2J\x1b[H"
)

// Size is a terminal's column/row extent.
type Size struct {
	Width, Height int
}

// DefaultSize is the fallback used when the size query fails.
var DefaultSize = Size{Width: 80, Height: 30}

// Terminal owns the raw-mode/alternate-screen lifecycle and the
// low-level paint primitives. Close is safe to call more than once and
// restores every transition Open made, so a deferred Close guarantees a
// sane terminal on every exit path including panics.
type Terminal struct {
	in       *os.File
	out      *os.File
	w        *bufio.Writer
	fd       int
	origTerm *term.State
	raw      bool
	entered  bool
}

// IsSupported reports whether both streams are real ttys. Open does not
// call it.
func IsSupported(in, out *os.File) bool {
	return isatty.IsTerminal(in.Fd()) && isatty.IsTerminal(out.Fd())
}

// Open switches to the alternate screen, enables raw mode, and hides the
// cursor. Callers must defer Close to guarantee restoration on every exit
// path, including a panicking one.
func Open(in, out *os.File) (*Terminal, error) {
	t := &Terminal{in: in, out: out, w: bufio.NewWriter(out), fd: int(out.Fd())}

	origState, err := term.GetState(int(in.Fd()))
	if err != nil {
		return nil, errors.Wrap(err, "get terminal state")
	}
	t.origTerm = origState

	if _, err := term.MakeRaw(int(in.Fd())); err != nil {
		return nil, errors.Wrap(err, "enter raw mode")
	}
	t.raw = true

	t.w.WriteString(altScreenEnter)
	t.w.WriteString(cursorHide)
	if err := t.w.Flush(); err != nil {
		return nil, errors.Wrap(err, "write terminal setup sequence")
	}
	t.entered = true
	return t, nil
}

// Close restores cursor visibility, leaves raw mode, and leaves the
// alternate screen. It is idempotent so a deferred Close after an earlier
// explicit Close (or a panic mid-setup) never double-restores.
func (t *Terminal) Close() error {
	if t.entered {
		t.w.WriteString(cursorShow)
		t.w.WriteString(altScreenExit)
		t.w.Flush()
		t.entered = false
	}
	if t.raw {
		err := term.Restore(int(t.in.Fd()), t.origTerm)
		t.raw = false
		return err
	}
	return nil
}

// Size queries the terminal's current column/row extent via TIOCGWINSZ,
// falling back to DefaultSize on any failure.
func (t *Terminal) Size() Size {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return DefaultSize
	}
	return Size{Width: int(ws.Col), Height: int(ws.Row)}
}

// MoveTo positions the cursor at the given 1-indexed (row, col).
func (t *Terminal) MoveTo(row, col int) {
	fmt.Fprintf(t.w, "\x1b[%d;%dH", row, col)
}

// WriteStyled writes already-SGR-styled text at the cursor's current
// position.
func (t *Terminal) WriteStyled(s string) {
	t.w.WriteString(s)
}

// ClearScreen clears the whole alternate-screen buffer; used for full
// repaints.
func (t *Terminal) ClearScreen() {
	t.w.WriteString(clearScreen)
}

// Flush pushes any queued writes to the terminal. A flush error here is
// fatal: the program is already mid-render in raw mode.
func (t *Terminal) Flush() error {
	return t.w.Flush()
}

// Reader exposes the raw input stream. The input package's key polling
// reads through InFd instead.
func (t *Terminal) Reader() io.Reader {
	return t.in
}

// InFd returns the input file descriptor, for input.NewReader's
// non-blocking reads.
func (t *Terminal) InFd() int {
	return int(t.in.Fd())
}
