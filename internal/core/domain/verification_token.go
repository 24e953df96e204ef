package domain

import "time"

// VerificationToken is a single-use (Identifier, Token) pair used by
// non-OAuth verification flows.
type VerificationToken struct {
	Identifier string    `json:"identifier"`
	Token      string    `json:"-"`
	Expires    time.Time `json:"expires"`
}

// IsExpired checks if the token has expired.
func (t *VerificationToken) IsExpired(now time.Time) bool {
	return !t.Expires.After(now)
}
