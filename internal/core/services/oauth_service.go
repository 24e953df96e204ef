package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"
)

// OAuthStateTTL bounds how long a sign-in may take at the provider.
const OAuthStateTTL = 10 * time.Minute

// OAuthDeps are the collaborators of the sign-in flow.
type OAuthDeps struct {
	Resolver    portssvc.IdentityResolverSvc
	Sessions    portssvc.SessionMaterializerSvc
	UserRepo    portsrepo.UserRepositoryFacade
	AccountRepo portsrepo.AccountRepositoryFacade
	Providers   []portssvc.OAuthProviderClient
	StateKey    []byte
	Issuer      string
	Metrics     portssvc.MetricsRecorder
}

type oauthService struct {
	BaseService
	deps      OAuthDeps
	providers map[domain.Provider]portssvc.OAuthProviderClient
	validate  *validator.Validate
	now       func() time.Time
}

// NewOAuthService creates the sign-in flow over the given providers. The
// order of deps.Providers is the order they are offered in.
func NewOAuthService(deps OAuthDeps) portssvc.OAuthSvcFacade {
	if deps.Metrics == nil {
		deps.Metrics = portssvc.NopMetrics{}
	}
	providers := make(map[domain.Provider]portssvc.OAuthProviderClient, len(deps.Providers))
	for _, p := range deps.Providers {
		providers[p.ID()] = p
	}
	return &oauthService{
		deps:      deps,
		providers: providers,
		validate:  validator.New(),
		now:       time.Now,
	}
}

var _ portssvc.OAuthSvcFacade = (*oauthService)(nil)

func (s *oauthService) Providers() []domain.ProviderInfo {
	infos := make([]domain.ProviderInfo, 0, len(s.deps.Providers))
	for _, p := range s.deps.Providers {
		infos = append(infos, domain.ProviderInfo{
			ID:        p.ID(),
			Name:      p.DisplayName(),
			SigninURL: "/api/auth/signin/" + string(p.ID()),
		})
	}
	return infos
}

// BeginSignIn signs a state carrying a fresh nonce and the local callback path.
func (s *oauthService) BeginSignIn(ctx context.Context, provider domain.Provider, callbackURL string) (*portssvc.SignInStart, error) {
	client, ok := s.providers[provider]
	if !ok {
		return nil, apperrors.NewSignInError(domain.SignInErrorOAuthSignin, string(provider), apperrors.ErrValidation)
	}

	nonce, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate oauth nonce")
		return nil, apperrors.NewSignInError(domain.SignInErrorOAuthSignin, string(provider), err)
	}
	state, err := utils.GenerateStateJWT(nonce, string(provider), utils.SafeCallbackPath(callbackURL), s.deps.Issuer, OAuthStateTTL, s.deps.StateKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign oauth state")
		return nil, apperrors.NewSignInError(domain.SignInErrorOAuthSignin, string(provider), err)
	}

	return &portssvc.SignInStart{AuthURL: client.AuthCodeURL(state), State: state}, nil
}

// CompleteSignIn runs the callback: state check, code exchange, profile,
// identity resolution, account linking and token issuance.
func (s *oauthService) CompleteSignIn(ctx context.Context, provider domain.Provider, code, state, expectedState string) (*portssvc.SignInResult, error) {
	result, err := s.completeSignIn(ctx, provider, code, state, expectedState)
	if err != nil {
		var signInErr *apperrors.SignInError
		outcome := domain.SignInErrorCallback
		if errors.As(err, &signInErr) {
			outcome = signInErr.Code
		}
		s.deps.Metrics.RecordSignIn(string(provider), outcome)
		return nil, err
	}
	s.deps.Metrics.RecordSignIn(string(provider), "success")
	return result, nil
}

func (s *oauthService) completeSignIn(ctx context.Context, provider domain.Provider, code, state, expectedState string) (*portssvc.SignInResult, error) {
	fail := func(code string, err error) error {
		return apperrors.NewSignInError(code, string(provider), err)
	}

	client, ok := s.providers[provider]
	if !ok {
		return nil, fail(domain.SignInErrorOAuthSignin, apperrors.ErrValidation)
	}

	if state == "" || state != expectedState {
		s.LogInfo(ctx, "OAuth state mismatch", slog.String("provider", string(provider)))
		return nil, fail(domain.SignInErrorOAuthCallback, errors.New("oauth state mismatch"))
	}
	stateClaims, err := utils.ParseStateJWT(state, s.deps.StateKey, s.deps.Issuer)
	if err != nil {
		return nil, fail(domain.SignInErrorOAuthCallback, err)
	}
	if stateClaims.Provider != string(provider) {
		return nil, fail(domain.SignInErrorOAuthCallback, errors.New("oauth state issued for another provider"))
	}

	if code == "" {
		return nil, fail(domain.SignInErrorOAuthCallback, errors.New("missing authorization code"))
	}
	token, err := client.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "OAuth code exchange failed", slog.String("provider", string(provider)))
		return nil, fail(domain.SignInErrorOAuthCallback, err)
	}

	profile, err := client.FetchProfile(ctx, token)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch provider profile", slog.String("provider", string(provider)))
		return nil, fail(domain.SignInErrorOAuthCallback, err)
	}
	if err := s.validate.Struct(profile); err != nil {
		s.LogInfo(ctx, "Provider profile rejected", slog.String("provider", string(provider)), slog.String("error", err.Error()))
		return nil, fail(domain.SignInErrorOAuthCallback, errors.Join(apperrors.ErrValidation, err))
	}

	decision, err := s.deps.Resolver.Resolve(ctx, domain.SignInAttempt{Email: profile.Email, Provider: provider})
	if !decision.Accepted {
		if err == nil {
			err = apperrors.ErrDuplicateEmail
		}
		return nil, fail(decision.ErrorCode, err)
	}

	user, isNew, err := s.linkAccount(ctx, profile, token)
	if err != nil {
		return nil, err
	}

	sessionToken, expires, err := s.deps.Sessions.IssueToken(ctx, user)
	if err != nil {
		return nil, fail(domain.SignInErrorCallback, err)
	}

	s.LogInfo(ctx, "User signed in",
		slog.String("user_id", user.ID),
		slog.String("provider", string(provider)),
		slog.Bool("new_user", isNew))

	return &portssvc.SignInResult{
		User:        user,
		Provider:    provider,
		Token:       sessionToken,
		Expires:     expires,
		CallbackURL: utils.WithLoginStatus(stateClaims.CallbackURL, string(provider)),
		NewUser:     isNew,
	}, nil
}

// linkAccount finds the user behind a provider identity, creating the user
// and account on first sign-in.
func (s *oauthService) linkAccount(ctx context.Context, profile *domain.OAuthProfile, token *oauth2.Token) (*domain.User, bool, error) {
	provider := profile.Provider
	fail := func(code string, err error) error {
		return apperrors.NewSignInError(code, string(provider), err)
	}

	account, err := s.deps.AccountRepo.FindAccountByProviderAccountID(ctx, provider, profile.ProviderAccountID)
	switch {
	case err == nil:
		return s.returningUser(ctx, account, profile, token)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up provider account")
		return nil, false, fail(domain.SignInErrorCallback, err)
	}

	_, err = s.deps.UserRepo.FindUserByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		// Same email and provider but a different provider account.
		return nil, false, fail(domain.SignInErrorAccountNotLinked, apperrors.ErrAccountNotLinked)
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to look up user by email")
		return nil, false, fail(domain.SignInErrorCallback, err)
	}

	newUser := domain.User{Name: profile.Name, Email: profile.Email, Image: profile.Image}
	if profile.EmailVerified {
		verified := s.now().UTC()
		newUser.EmailVerified = &verified
	}
	user, err := s.deps.UserRepo.CreateUser(ctx, newUser)
	if err != nil {
		s.LogError(ctx, err, "Failed to create user")
		return nil, false, fail(domain.SignInErrorOAuthCreateAccount, err)
	}

	_, err = s.deps.AccountRepo.LinkAccount(ctx, domain.Account{
		UserID:            user.ID,
		Type:              domain.AccountTypeOAuth,
		Provider:          provider,
		ProviderAccountID: profile.ProviderAccountID,
		Tokens:            tokenSetFrom(token),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to link account", slog.String("user_id", user.ID))
		// A user without an account would be rejected as duplicate_email on every retry.
		if delErr := s.deps.UserRepo.DeleteUser(context.WithoutCancel(ctx), user.ID); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove unlinked user", slog.String("user_id", user.ID))
		}
		return nil, false, fail(domain.SignInErrorOAuthCreateAccount, err)
	}
	return user, true, nil
}

// returningUser refreshes tokens and profile fields. Failures there are
// logged and do not block the sign-in.
func (s *oauthService) returningUser(ctx context.Context, account *domain.Account, profile *domain.OAuthProfile, token *oauth2.Token) (*domain.User, bool, error) {
	if err := s.deps.AccountRepo.UpdateAccountTokens(ctx, account.ID, tokenSetFrom(token)); err != nil {
		s.LogWarn(ctx, err, "Failed to refresh account tokens", slog.String("account_id", account.ID))
	}

	user, err := s.deps.UserRepo.FindUserByID(ctx, account.UserID)
	if err != nil {
		s.LogError(ctx, err, "Account points at a missing user", slog.String("account_id", account.ID))
		return nil, false, apperrors.NewSignInError(domain.SignInErrorCallback, string(profile.Provider), err)
	}

	if (profile.Name != "" && profile.Name != user.Name) || (profile.Image != "" && profile.Image != user.Image) {
		name, image := user.Name, user.Image
		if profile.Name != "" {
			name = profile.Name
		}
		if profile.Image != "" {
			image = profile.Image
		}
		if err := s.deps.UserRepo.UpdateUserProfile(ctx, user.ID, name, image); err != nil {
			s.LogWarn(ctx, err, "Failed to refresh user profile", slog.String("user_id", user.ID))
		} else {
			user.Name, user.Image = name, image
		}
	}
	return user, false, nil
}

func tokenSetFrom(token *oauth2.Token) domain.TokenSet {
	if token == nil {
		return domain.TokenSet{}
	}
	ts := domain.TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
	}
	if !token.Expiry.IsZero() {
		ts.ExpiresAt = token.Expiry.Unix()
	}
	ts.Scope, _ = token.Extra("scope").(string)
	ts.IDToken, _ = token.Extra("id_token").(string)
	ts.SessionState, _ = token.Extra("session_state").(string)
	return ts
}
