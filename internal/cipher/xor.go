package cipher

// XOR applies a repeating key. Ciphertext travels as hex since the raw
// output is rarely printable. An empty key is the identity.
type XOR struct {
	Key []byte
}

func (XOR) Name() string { return "xor" }

// Apply xors input with the repeating key. It is its own inverse.
func (x XOR) Apply(input []byte) []byte {
	out := make([]byte, len(input))
	if len(x.Key) == 0 {
		copy(out, input)
		return out
	}
	for i, b := range input {
		out[i] = b ^ x.Key[i%len(x.Key)]
	}
	return out
}

func (x XOR) Encode(input []byte) string {
	return Hex{}.Encode(x.Apply(input))
}

func (x XOR) Decode(text string) ([]byte, error) {
	raw, err := Hex{}.Decode(text)
	if err != nil {
		return nil, err
	}
	return x.Apply(raw), nil
}
