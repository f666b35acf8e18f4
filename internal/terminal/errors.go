package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTerminal is returned when the input is not an interactive terminal.
	ErrNotTerminal = errors.New("not a terminal")
	// ErrInputClosed reports that the input source reached EOF.
	ErrInputClosed = errors.New("input closed")
)

// Kind classifies the fatal errors a session can end with.
type Kind int

const (
	KindAcquire Kind = iota
	KindDisplay
	KindInput
)

func (k Kind) String() string {
	switch k {
	case KindAcquire:
		return "acquire terminal"
	case KindDisplay:
		return "display"
	case KindInput:
		return "read input"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a fatal session error. Use errors.As to inspect the Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a session error of kind k.
func IsKind(err error, k Kind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == k
}
