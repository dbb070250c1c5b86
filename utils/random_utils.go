package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// RandomToken generates a secure random hex token of n bytes
func RandomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to read random bytes")
	}
	return hex.EncodeToString(buf)
}
