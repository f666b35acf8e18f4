package cipher

import (
	"crypto/md5"
	"encoding/hex"
)

// MD5 renders the digest as lower case hex.
type MD5 struct{}

func (MD5) Name() string { return "md5" }

func (MD5) Sum(input []byte) string {
	sum := md5.Sum(input)
	return hex.EncodeToString(sum[:])
}
