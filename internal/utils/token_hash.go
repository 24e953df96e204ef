package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the SHA256 hex digest of a token, used to store session
// tokens without keeping the bearer value.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
