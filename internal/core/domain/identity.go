package domain

import "net/url"

// SignInAttempt is what an OAuth callback presents to the identity resolver.
type SignInAttempt struct {
	Email    string
	Provider Provider
}

// SignInDecision is the outcome of resolving a sign-in attempt.
// A rejected decision carries the redirect the caller must follow.
type SignInDecision struct {
	Accepted    bool
	ErrorCode   string
	RedirectURL string
}

// Error codes understood by the auth error page.
const (
	SignInErrorDuplicateEmail     = "duplicate_email"
	SignInErrorCallback           = "Callback"
	SignInErrorOAuthSignin        = "OAuthSignin"
	SignInErrorOAuthCallback      = "OAuthCallback"
	SignInErrorOAuthCreateAccount = "OAuthCreateAccount"
	SignInErrorAccountNotLinked   = "OAuthAccountNotLinked"
	SignInErrorEmailCreateAccount = "EmailCreateAccount"
	SignInErrorSessionRequired    = "SessionRequired"
)

// OAuthProfile is the provider identity returned after a code exchange.
type OAuthProfile struct {
	Provider          Provider `validate:"required"`
	ProviderAccountID string   `validate:"required"`
	Email             string   `validate:"required,email"`
	Name              string
	Image             string
	EmailVerified     bool
}

// IdentityClues are the places a bookmark request may carry its user identity.
type IdentityClues struct {
	Session      *SessionPayload
	HeaderUserID string
	BodyUserID   string
}

// AuthErrorPath builds the auth error page URL for a sign-in error code.
func AuthErrorPath(code string, provider Provider) string {
	q := url.Values{"error": {code}}
	if provider != "" {
		q.Set("provider", string(provider))
	}
	return "/auth/error?" + q.Encode()
}
