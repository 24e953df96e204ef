package domain

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
)

// GuardStatus is the session status seen by a protected page.
type GuardStatus string

const (
	GuardLoading         GuardStatus = "loading"
	GuardUnauthenticated GuardStatus = "unauthenticated"
	GuardAuthenticated   GuardStatus = "authenticated"
)

// GuardState tracks the session status of one protected page render.
// It starts in GuardLoading and is resolved exactly once; both resolved
// states are terminal for the lifetime of the render.
type GuardState struct {
	mu      sync.Mutex
	status  GuardStatus
	session *SessionPayload
}

// NewGuardState returns a guard in the loading state.
func NewGuardState() *GuardState {
	return &GuardState{status: GuardLoading}
}

// Status returns the current status.
func (g *GuardState) Status() GuardStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Session returns the session the guard was resolved with, nil unless authenticated.
func (g *GuardState) Session() *SessionPayload {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// Resolve moves a loading guard to authenticated when session identifies a
// user, and to unauthenticated otherwise.
func (g *GuardState) Resolve(session *SessionPayload) (GuardStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status != GuardLoading {
		return g.status, fmt.Errorf("%w: already %s", apperrors.ErrInvalidGuardTransition, g.status)
	}
	if session.HasUser() {
		g.status = GuardAuthenticated
		g.session = session
	} else {
		g.status = GuardUnauthenticated
	}
	return g.status, nil
}

// GuardAction is a navigation option offered by the guard panel.
type GuardAction struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// GuardView is what a protected page renders for a guard status.
type GuardView struct {
	Status  GuardStatus   `json:"status"`
	Title   string        `json:"title,omitempty"`
	Message string        `json:"message,omitempty"`
	Actions []GuardAction `json:"actions,omitempty"`
	Content any           `json:"content,omitempty"`
}

// SignInPath builds the sign-in page URL that returns to callbackPath afterwards.
func SignInPath(callbackPath string) string {
	return "/auth/signin?" + url.Values{"callbackUrl": {callbackPath}}.Encode()
}

// RenderGuard produces the view for the guard's status. content is only used
// when the guard is authenticated.
func RenderGuard(g *GuardState, requestPath string, content any) GuardView {
	switch g.Status() {
	case GuardAuthenticated:
		return GuardView{Status: GuardAuthenticated, Content: content}
	case GuardUnauthenticated:
		return GuardView{
			Status:  GuardUnauthenticated,
			Title:   "Authentication Required",
			Message: "You need to be signed in to access this page. Please sign in to continue.",
			Actions: []GuardAction{
				{Label: "Sign In", Href: SignInPath(requestPath)},
				{Label: "Go Home", Href: "/"},
			},
		}
	default:
		return GuardView{Status: GuardLoading, Message: "Checking authentication..."}
	}
}
