package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	var created *domain.User
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.User)
	}
	return created, args.Error(1)
}

func (m *MockUserRepository) UpdateUserProfile(ctx context.Context, userID, name, image string) error {
	args := m.Called(ctx, userID, name, image)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.Account, error) {
	args := m.Called(ctx, userID, provider)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByProviderAccountID(ctx context.Context, provider domain.Provider, providerAccountID string) (*domain.Account, error) {
	args := m.Called(ctx, provider, providerAccountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) LinkAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	args := m.Called(ctx, account)
	var linked *domain.Account
	if args.Get(0) != nil {
		linked = args.Get(0).(*domain.Account)
	}
	return linked, args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountTokens(ctx context.Context, accountID string, tokens domain.TokenSet) error {
	args := m.Called(ctx, accountID, tokens)
	return args.Error(0)
}

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByToken(ctx context.Context, sessionToken string) (*domain.Session, error) {
	args := m.Called(ctx, sessionToken)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionToken string) error {
	args := m.Called(ctx, sessionToken)
	return args.Error(0)
}

// --- Mock BookmarkRepository ---
type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) ListBookmarksByUser(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	args := m.Called(ctx, userID)
	var bookmarks []domain.Bookmark
	if args.Get(0) != nil {
		bookmarks = args.Get(0).([]domain.Bookmark)
	}
	return bookmarks, args.Error(1)
}

func (m *MockBookmarkRepository) FindBookmark(ctx context.Context, userID, articleID string) (*domain.Bookmark, error) {
	args := m.Called(ctx, userID, articleID)
	var bookmark *domain.Bookmark
	if args.Get(0) != nil {
		bookmark = args.Get(0).(*domain.Bookmark)
	}
	return bookmark, args.Error(1)
}

func (m *MockBookmarkRepository) CreateBookmark(ctx context.Context, bookmark domain.Bookmark) (*domain.Bookmark, error) {
	args := m.Called(ctx, bookmark)
	var created *domain.Bookmark
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Bookmark)
	}
	return created, args.Error(1)
}

func (m *MockBookmarkRepository) DeleteBookmark(ctx context.Context, userID, articleID string) error {
	args := m.Called(ctx, userID, articleID)
	return args.Error(0)
}

// --- Mock OAuthProviderClient ---
type MockProviderClient struct {
	mock.Mock
	id domain.Provider
}

func (m *MockProviderClient) ID() domain.Provider { return m.id }
func (m *MockProviderClient) DisplayName() string { return string(m.id) }

func (m *MockProviderClient) AuthCodeURL(state string) string {
	return "https://provider.test/authorize?state=" + state
}

func (m *MockProviderClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	var token *oauth2.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*oauth2.Token)
	}
	return token, args.Error(1)
}

func (m *MockProviderClient) FetchProfile(ctx context.Context, token *oauth2.Token) (*domain.OAuthProfile, error) {
	args := m.Called(ctx, token)
	var profile *domain.OAuthProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.OAuthProfile)
	}
	return profile, args.Error(1)
}

// --- Mock IdentityResolver ---
type MockIdentityResolver struct {
	mock.Mock
}

func (m *MockIdentityResolver) Resolve(ctx context.Context, attempt domain.SignInAttempt) (domain.SignInDecision, error) {
	args := m.Called(ctx, attempt)
	return args.Get(0).(domain.SignInDecision), args.Error(1)
}

// --- Mock SessionMaterializer ---
type MockSessionMaterializer struct {
	mock.Mock
}

func (m *MockSessionMaterializer) IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockSessionMaterializer) Materialize(ctx context.Context, token string) (*domain.SessionPayload, error) {
	args := m.Called(ctx, token)
	var payload *domain.SessionPayload
	if args.Get(0) != nil {
		payload = args.Get(0).(*domain.SessionPayload)
	}
	return payload, args.Error(1)
}

// recordingMetrics captures recorded outcomes.
type recordingMetrics struct {
	signIns   []string
	bookmarks []string
}

func (r *recordingMetrics) RecordSignIn(provider, outcome string) {
	r.signIns = append(r.signIns, provider+":"+outcome)
}

func (r *recordingMetrics) RecordBookmarkOperation(operation, outcome string) {
	r.bookmarks = append(r.bookmarks, operation+":"+outcome)
}
