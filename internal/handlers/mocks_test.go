package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/dto"
	"github.com/SscSPs/news_digest_app/internal/handlers"
	"github.com/SscSPs/news_digest_app/internal/middleware"
	"github.com/SscSPs/news_digest_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

const (
	testCookieName = "nda.session_token"
	validToken     = "valid-session-token"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
	session *domain.SessionPayload
}

func (m *MockSessionService) IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

// Materialize accepts validToken only; it is not tracked as a mock call.
func (m *MockSessionService) Materialize(_ context.Context, token string) (*domain.SessionPayload, error) {
	if token == validToken && m.session != nil {
		return m.session, nil
	}
	return nil, context.Canceled
}

func (m *MockSessionService) RevokeToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock BookmarkService ---
type MockBookmarkService struct {
	mock.Mock
}

func (m *MockBookmarkService) ListBookmarks(ctx context.Context, clues domain.IdentityClues) ([]domain.Bookmark, error) {
	args := m.Called(ctx, clues)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bookmark), args.Error(1)
}

func (m *MockBookmarkService) CreateBookmark(ctx context.Context, clues domain.IdentityClues, req dto.CreateBookmarkRequest) (*domain.Bookmark, bool, error) {
	args := m.Called(ctx, clues, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Bookmark), args.Bool(1), args.Error(2)
}

func (m *MockBookmarkService) DeleteBookmark(ctx context.Context, clues domain.IdentityClues, articleID string) error {
	args := m.Called(ctx, clues, articleID)
	return args.Error(0)
}

var _ portssvc.BookmarkSvcFacade = (*MockBookmarkService)(nil)

// --- Mock OAuthService ---
type MockOAuthService struct {
	mock.Mock
}

func (m *MockOAuthService) Providers() []domain.ProviderInfo {
	return []domain.ProviderInfo{{ID: domain.ProviderGitHub, Name: "GitHub", SigninURL: "/api/auth/signin/github"}}
}

func (m *MockOAuthService) BeginSignIn(ctx context.Context, provider domain.Provider, callbackURL string) (*portssvc.SignInStart, error) {
	args := m.Called(ctx, provider, callbackURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SignInStart), args.Error(1)
}

func (m *MockOAuthService) CompleteSignIn(ctx context.Context, provider domain.Provider, code, state, expectedState string) (*portssvc.SignInResult, error) {
	args := m.Called(ctx, provider, code, state, expectedState)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.SignInResult), args.Error(1)
}

var _ portssvc.OAuthSvcFacade = (*MockOAuthService)(nil)

// --- Mock SummaryService ---
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summarize(ctx context.Context, prompt string, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, maxTokens)
	return args.String(0), args.Error(1)
}

var _ portssvc.SummarySvcFacade = (*MockSummaryService)(nil)

// testServer wires the real routes to mocked services.
type testServer struct {
	router    *gin.Engine
	cfg       *config.Config
	sessions  *MockSessionService
	bookmarks *MockBookmarkService
	oauth     *MockOAuthService
	summary   *MockSummaryService
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	ts := &testServer{
		cfg: &config.Config{
			IsProduction:          true,
			SessionCookieName:     testCookieName,
			SessionMaxAge:         30 * 24 * time.Hour,
			ProtectedPathPrefixes: []string{"/news", "/saved"},
		},
		sessions:  &MockSessionService{},
		bookmarks: new(MockBookmarkService),
		oauth:     new(MockOAuthService),
		summary:   new(MockSummaryService),
	}
	container := &portssvc.ServiceContainer{
		Session:  ts.sessions,
		OAuth:    ts.oauth,
		Bookmark: ts.bookmarks,
		Summary:  ts.summary,
	}

	ts.router = gin.New()
	ts.router.Use(middleware.SessionMiddleware(ts.sessions, testCookieName))
	handlers.RegisterRoutes(ts.router, ts.cfg, container, handlers.RouteDeps{})
	return ts
}

func (ts *testServer) signIn(session *domain.SessionPayload) {
	ts.sessions.session = session
}

func (ts *testServer) do(method, target, body string, authenticated bool, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authenticated {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: validToken})
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func cookieByName(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
