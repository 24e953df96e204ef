package domain

import "time"

// Session is the stored session record. Sessions are stateless JWTs, so the
// collection only holds tokens revoked by sign-out until they expire.
type Session struct {
	ID           string    `json:"id"`
	SessionToken string    `json:"-"`
	UserID       string    `json:"userId"`
	Expires      time.Time `json:"expires"`
}

// SessionUser is the user view carried by a materialized session.
type SessionUser struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
}

// SessionPayload is the request-scoped session rebuilt from a session token.
// User.ID is resolved once when the payload is built; Subject and StoreID keep
// the raw claim values it was resolved from.
type SessionPayload struct {
	User    SessionUser `json:"user"`
	Subject string      `json:"-"`
	StoreID string      `json:"-"`
	Expires time.Time   `json:"expires"`
}

// HasUser reports whether the payload carries anything that identifies a user.
func (p *SessionPayload) HasUser() bool {
	if p == nil {
		return false
	}
	return p.User.ID != "" || p.Subject != "" || p.StoreID != "" || p.User.Email != ""
}
