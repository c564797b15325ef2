package chrono

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tartampluch/go-chrono/internal/config"
)

// Error kinds. Match them with errors.Is; every error returned by this
// package matches exactly one of them.
var (
	ErrInvalidTime           = errors.New(config.ErrInvalidTime)
	ErrInvalidTimeFormat     = errors.New(config.ErrInvalidTimeFormat)
	ErrInvalidTimezoneFormat = errors.New(config.ErrInvalidTimezoneFormat)
	ErrParse                 = errors.New(config.ErrParse)
	ErrDivisionByZero        = errors.New(config.ErrDivisionByZero)
	ErrUnderflow             = errors.New(config.ErrUnderflow)
	ErrOverflow              = errors.New(config.ErrOverflow)
)

// TimeError carries the offending input alongside its kind.
//
// Input and Pattern are set for string conversions; Err holds the
// diagnostic of the underlying parser when there is one.
type TimeError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Input is the string that failed to convert.
	Input string

	// Pattern is the strftime pattern in use, if any.
	Pattern string

	// Err is the underlying diagnostic.
	Err error
}

// Error implements the error interface.
func (e *TimeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Input != "" {
		fmt.Fprintf(&b, ": %q", e.Input)
	}
	if e.Pattern != "" {
		fmt.Fprintf(&b, " (pattern %q)", e.Pattern)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is reports whether target is the kind of this error.
func (e *TimeError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying diagnostic.
func (e *TimeError) Unwrap() error {
	return e.Err
}

func newError(kind error, input, pattern string, err error) *TimeError {
	return &TimeError{Kind: kind, Input: input, Pattern: pattern, Err: err}
}
