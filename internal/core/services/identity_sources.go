package services

import "github.com/SscSPs/news_digest_app/internal/core/domain"

// IdentitySource is one place a bookmark request may carry its user id.
type IdentitySource struct {
	Name    string
	Extract func(domain.IdentityClues) string
}

func sessionField(get func(*domain.SessionPayload) string) func(domain.IdentityClues) string {
	return func(c domain.IdentityClues) string {
		if c.Session == nil {
			return ""
		}
		return get(c.Session)
	}
}

// DefaultIdentitySources lists the sources in the order they are consulted.
// Email comes last so that records keyed by id keep matching.
var DefaultIdentitySources = []IdentitySource{
	{Name: "session_id", Extract: sessionField(func(s *domain.SessionPayload) string { return s.User.ID })},
	{Name: "session_subject", Extract: sessionField(func(s *domain.SessionPayload) string { return s.Subject })},
	{Name: "session_store_id", Extract: sessionField(func(s *domain.SessionPayload) string { return s.StoreID })},
	{Name: "header_user_id", Extract: func(c domain.IdentityClues) string { return c.HeaderUserID }},
	{Name: "body_user_id", Extract: func(c domain.IdentityClues) string { return c.BodyUserID }},
	{Name: "session_email", Extract: sessionField(func(s *domain.SessionPayload) string { return s.User.Email })},
}

// ResolveIdentity returns the first non-empty identifier and the name of the
// source that produced it.
func ResolveIdentity(clues domain.IdentityClues, sources []IdentitySource) (id, source string, ok bool) {
	for _, src := range sources {
		if v := src.Extract(clues); v != "" {
			return v, src.Name, true
		}
	}
	return "", "", false
}
