package adminctl

import (
	"crypto/rand"
	"encoding/hex"
)

// randomHex returns n random bytes hex-encoded, so the result is 2n
// characters long.
func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// wipe zeroes b so a password does not outlive its use.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
