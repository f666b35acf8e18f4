// Package cipher holds the encoding utilities shown by the tool tabs.
// None of them are meant to protect anything.
package cipher

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is wrapped by every Decode failure.
var ErrInvalidEncoding = errors.New("invalid encoding")

// Codec turns bytes into printable text and back.
type Codec interface {
	Name() string
	Encode(input []byte) string
	Decode(text string) ([]byte, error)
}

// Digest is a one-way transform rendered as text.
type Digest interface {
	Name() string
	Sum(input []byte) string
}

func invalid(codec string, err error) error {
	return fmt.Errorf("%s: %w: %v", codec, ErrInvalidEncoding, err)
}
