package cipher

import "encoding/base64"

// Base64 uses the standard padded alphabet.
type Base64 struct{}

func (Base64) Name() string { return "base64" }

func (Base64) Encode(input []byte) string {
	return base64.StdEncoding.EncodeToString(input)
}

func (Base64) Decode(text string) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, invalid("base64", err)
	}
	return out, nil
}
