package dto

import (
	"time"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
)

// SignInPageResponse lists the providers a user can sign in with.
type SignInPageResponse struct {
	Providers   []domain.ProviderInfo `json:"providers"`
	CallbackURL string                `json:"callbackUrl"`
}

// SessionResponse is the body of GET /api/auth/session. It is empty when
// there is no session.
type SessionResponse struct {
	User    *domain.SessionUser `json:"user,omitempty"`
	Expires *time.Time          `json:"expires,omitempty"`
}

// ToSessionResponse converts a session payload to its public view.
func ToSessionResponse(p *domain.SessionPayload) SessionResponse {
	if p == nil {
		return SessionResponse{}
	}
	user := p.User
	expires := p.Expires
	return SessionResponse{User: &user, Expires: &expires}
}

// SignOutResponse tells the client where to go after signing out.
type SignOutResponse struct {
	URL string `json:"url"`
}

// AuthErrorResponse explains a failed sign-in.
type AuthErrorResponse struct {
	Error   string   `json:"error"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Options []string `json:"options,omitempty"`
}
