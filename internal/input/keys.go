// Package input decodes keypresses from a raw-mode tty and runs the
// picker's key state machine: a small explicit
// AwaitingKey/Exiting/Selected machine fed by single-byte non-blocking
// reads with an idle sleep between polls.
package input

import (
	"time"

	"golang.org/x/sys/unix"
)

// KeyKind classifies a decoded keypress.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyRune
	KeyEnter
	KeySpace
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPgUp
	KeyPgDn
	KeyUnknown
)

// Key is one decoded keypress.
type Key struct {
	Kind KeyKind
	Rune rune
}

// pollInterval is the idle sleep between non-blocking read attempts.
const pollInterval = 25 * time.Millisecond

// Reader performs non-blocking reads of a raw-mode tty, decoding escape
// sequences for arrow/page keys.
type Reader struct {
	fd int
}

func NewReader(fd int) *Reader {
	return &Reader{fd: fd}
}

// ReadKey blocks (via idle-sleep polling) until a key is available, then
// decodes and returns it. A read error is returned verbatim; the caller
// treats it as fatal.
func (r *Reader) ReadKey() (Key, error) {
	b, err := r.readByte()
	if err != nil {
		return Key{}, err
	}

	if b != 0x1b {
		return decodeByte(b), nil
	}

	// Escape sequence: the remaining bytes of a CSI sequence arrive
	// essentially immediately after the ESC byte itself, so a short
	// non-blocking follow-up read (rather than the idle-sleep loop) is
	// enough to distinguish a bare Esc from an arrow/page key.
	b2, ok := r.tryReadByte()
	if !ok || b2 != '[' {
		return Key{Kind: KeyEsc}, nil
	}
	b3, ok := r.tryReadByte()
	if !ok {
		return Key{Kind: KeyEsc}, nil
	}

	switch b3 {
	case 'A':
		return Key{Kind: KeyUp}, nil
	case 'B':
		return Key{Kind: KeyDown}, nil
	case 'C':
		return Key{Kind: KeyRight}, nil
	case 'D':
		return Key{Kind: KeyLeft}, nil
	case '5':
		r.tryReadByte() // trailing '~'
		return Key{Kind: KeyPgUp}, nil
	case '6':
		r.tryReadByte() // trailing '~'
		return Key{Kind: KeyPgDn}, nil
	default:
		return Key{Kind: KeyUnknown}, nil
	}
}

func decodeByte(b byte) Key {
	switch b {
	case '\r', '\n':
		return Key{Kind: KeyEnter}
	case ' ':
		return Key{Kind: KeySpace}
	default:
		if b < 0x20 || b == 0x7f {
			return Key{Kind: KeyUnknown}
		}
		return Key{Kind: KeyRune, Rune: rune(b)}
	}
}

// readByte blocks (polling at pollInterval) until one byte is available.
func (r *Reader) readByte() (byte, error) {
	buf := make([]byte, 1)
	for {
		unix.SetNonblock(r.fd, true)
		n, err := unix.Read(r.fd, buf)
		if n == 1 {
			return buf[0], nil
		}
		if err != nil && err != unix.EAGAIN && err != unix.EWOULDBLOCK {
			return 0, err
		}
		time.Sleep(pollInterval)
	}
}

// tryReadByte makes a handful of quick non-blocking attempts, enough to
// catch the rest of an already-arrived CSI sequence without stalling a
// full idle-sleep cycle on a bare Esc press.
func (r *Reader) tryReadByte() (byte, bool) {
	for i := 0; i < 4; i++ {
		buf := make([]byte, 1)
		unix.SetNonblock(r.fd, true)
		n, err := unix.Read(r.fd, buf)
		if n == 1 {
			return buf[0], true
		}
		if err != nil && err != unix.EAGAIN && err != unix.EWOULDBLOCK {
			return 0, false
		}
		time.Sleep(time.Millisecond)
	}
	return 0, false
}

