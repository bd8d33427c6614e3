// Package clipboard is the OS-clipboard output destination.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// Available reports whether a clipboard program could be found. When it
// returns false a toggle to the clipboard destination still works, but
// the final Copy will fail.
func Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "write to system clipboard")
	}
	return nil
}
