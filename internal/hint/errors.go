package hint

import "github.com/pkg/errors"

// Sentinel errors returned by the construction-time APIs in this package.
// present() itself never returns one of these: all of them surface before
// the alternate screen is entered.
var (
	ErrUnknownAlphabet          = errors.New("unknown alphabet")
	ErrUnknownPatternName       = errors.New("unknown pattern name")
	ErrUnknownColor             = errors.New("unknown color")
	ErrExpectedSurroundingPair  = errors.New("expected exactly two surrounding characters")
	ErrInvalidCustomRegexp      = errors.New("invalid custom regular expression")
	ErrCustomRegexpNoCaptureGrp = errors.New("custom regular expression must contain a capture group")
)

// ExpectedEnumVariant reports that a string option's value was not one of
// the permitted variants. Option holds the rejected value and Allowed the
// permitted ones.
type ExpectedEnumVariant struct {
	Option  string
	Allowed []string
}

func (e *ExpectedEnumVariant) Error() string {
	msg := "invalid value " + e.Option + " (expected one of: "
	for i, a := range e.Allowed {
		if i > 0 {
			msg += "|"
		}
		msg += a
	}
	return msg + ")"
}
