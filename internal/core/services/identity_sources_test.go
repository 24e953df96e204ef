package services_test

import (
	"testing"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/SscSPs/news_digest_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestResolveIdentityOrder(t *testing.T) {
	full := &domain.SessionPayload{
		User:    domain.SessionUser{ID: "id-1", Email: "a@example.com"},
		Subject: "sub-1",
		StoreID: "store-1",
	}

	tests := []struct {
		name       string
		clues      domain.IdentityClues
		wantID     string
		wantSource string
	}{
		{"session id first", domain.IdentityClues{Session: full, HeaderUserID: "h", BodyUserID: "b"}, "id-1", "session_id"},
		{"subject", domain.IdentityClues{Session: &domain.SessionPayload{Subject: "sub-1", StoreID: "store-1"}}, "sub-1", "session_subject"},
		{"store id", domain.IdentityClues{Session: &domain.SessionPayload{StoreID: "store-1", User: domain.SessionUser{Email: "a@example.com"}}}, "store-1", "session_store_id"},
		{"header beats body", domain.IdentityClues{Session: &domain.SessionPayload{User: domain.SessionUser{Email: "a@example.com"}}, HeaderUserID: "h", BodyUserID: "b"}, "h", "header_user_id"},
		{"body", domain.IdentityClues{Session: &domain.SessionPayload{User: domain.SessionUser{Email: "a@example.com"}}, BodyUserID: "b"}, "b", "body_user_id"},
		{"email last", domain.IdentityClues{Session: &domain.SessionPayload{User: domain.SessionUser{Email: "a@example.com"}}}, "a@example.com", "session_email"},
		{"no session header only", domain.IdentityClues{HeaderUserID: "h"}, "h", "header_user_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, source, ok := services.ResolveIdentity(tt.clues, services.DefaultIdentitySources)
			assert.True(t, ok)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestResolveIdentityNothing(t *testing.T) {
	id, source, ok := services.ResolveIdentity(domain.IdentityClues{Session: &domain.SessionPayload{}}, services.DefaultIdentitySources)
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Empty(t, source)
}
