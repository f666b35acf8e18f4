package cipher

import (
	"encoding/hex"
	"strings"
)

// Hex encodes lower case and decodes either case.
type Hex struct{}

func (Hex) Name() string { return "hex" }

func (Hex) Encode(input []byte) string {
	return hex.EncodeToString(input)
}

func (Hex) Decode(text string) ([]byte, error) {
	out, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, invalid("hex", err)
	}
	return out, nil
}
