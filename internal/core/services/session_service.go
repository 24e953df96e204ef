package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
	"github.com/SscSPs/news_digest_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionMaxAge is the fixed lifetime of a session token. It is not
// extended by activity.
const DefaultSessionMaxAge = 30 * 24 * time.Hour

// DefaultRevocationCheckTimeout bounds the revocation lookup done on every
// materialize, so an unreachable store does not stall requests.
const DefaultRevocationCheckTimeout = 2 * time.Second

// objectIDLiteral matches ids serialized as ObjectID("<hex>").
var objectIDLiteral = regexp.MustCompile(`^ObjectI[dD]\(["']?([0-9a-fA-F]{24})["']?\)$`)

// sessionService issues and materializes stateless session JWTs. The
// session repository only records revoked tokens.
type sessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepositoryFacade
	signingKey  []byte
	issuer      string
	maxAge      time.Duration
	revokeWait  time.Duration
	now         func() time.Time
}

// SessionServiceOption configures the session service.
type SessionServiceOption func(*sessionService)

// WithSessionClock replaces time.Now, for tests.
func WithSessionClock(now func() time.Time) SessionServiceOption {
	return func(s *sessionService) { s.now = now }
}

// WithSessionMaxAge overrides DefaultSessionMaxAge.
func WithSessionMaxAge(d time.Duration) SessionServiceOption {
	return func(s *sessionService) {
		if d > 0 {
			s.maxAge = d
		}
	}
}

// WithRevocationCheckTimeout overrides DefaultRevocationCheckTimeout.
func WithRevocationCheckTimeout(d time.Duration) SessionServiceOption {
	return func(s *sessionService) {
		if d > 0 {
			s.revokeWait = d
		}
	}
}

// NewSessionService creates a session service signing with signingKey.
func NewSessionService(sessionRepo portsrepo.SessionRepositoryFacade, signingKey []byte, issuer string, opts ...SessionServiceOption) portssvc.SessionSvcFacade {
	s := &sessionService{
		sessionRepo: sessionRepo,
		signingKey:  signingKey,
		issuer:      issuer,
		maxAge:      DefaultSessionMaxAge,
		revokeWait:  DefaultRevocationCheckTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// IssueToken signs a token carrying the user id as sub, as the userId claim
// and as the raw store id.
func (s *sessionService) IssueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	if user == nil || user.ID == "" {
		return "", time.Time{}, apperrors.NewValidationError("cannot issue a session without a user id", nil)
	}

	now := s.now()
	expires := now.Add(s.maxAge)
	claims := utils.SessionClaims{
		UserID:  user.ID,
		StoreID: user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Picture: user.Image,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := utils.GenerateSessionJWT(claims, s.signingKey)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("user_id", user.ID))
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expires, nil
}

// Materialize verifies token and builds the session from its claims. Claim
// problems never fail the call: the session is returned with whatever
// identity could be read.
func (s *sessionService) Materialize(ctx context.Context, token string) (*domain.SessionPayload, error) {
	if token == "" {
		return nil, apperrors.NewAuthorizationError("no session token", nil)
	}

	claims, err := s.parse(token)
	if err != nil {
		return nil, apperrors.NewAuthorizationError("invalid session token", errors.Join(apperrors.ErrUnauthorized, err))
	}

	if s.isRevoked(ctx, token) {
		return nil, apperrors.NewAuthorizationError("session token revoked", nil)
	}

	storeID, err := normaliseStoreID(claims.StoreID)
	if err != nil {
		s.LogWarn(ctx, err, "Ignoring malformed _id claim")
	}

	payload := &domain.SessionPayload{
		User: domain.SessionUser{
			ID:    firstNonEmpty(claims.Subject, claims.UserID, storeID),
			Name:  claims.Name,
			Email: claims.Email,
			Image: claims.Picture,
		},
		Subject: claims.Subject,
		StoreID: storeID,
	}
	if claims.ExpiresAt != nil {
		payload.Expires = claims.ExpiresAt.Time
	}
	if payload.User.ID == "" {
		s.LogInfo(ctx, "Session token carries no user id")
	}
	return payload, nil
}

// RevokeToken records the token hash so Materialize rejects it until it expires.
// Tokens that no longer verify need no revocation.
func (s *sessionService) RevokeToken(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}

	session := domain.Session{
		SessionToken: utils.HashToken(token),
		UserID:       firstNonEmpty(claims.Subject, claims.UserID),
	}
	if claims.ExpiresAt != nil {
		session.Expires = claims.ExpiresAt.Time
	} else {
		session.Expires = s.now().Add(s.maxAge)
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to revoke session token")
		return apperrors.NewTransientStoreError("failed to revoke session", err)
	}
	return nil
}

func (s *sessionService) parse(token string) (*utils.SessionClaims, error) {
	return utils.ParseSessionJWT(token, s.signingKey, s.issuer, jwt.WithTimeFunc(s.now))
}

// isRevoked fails open: a store error leaves the token usable.
func (s *sessionService) isRevoked(ctx context.Context, token string) bool {
	lookupCtx, cancel := context.WithTimeout(ctx, s.revokeWait)
	defer cancel()
	_, err := s.sessionRepo.FindSessionByToken(lookupCtx, utils.HashToken(token))
	switch {
	case err == nil:
		return true
	case errors.Is(err, apperrors.ErrNotFound):
		return false
	default:
		s.LogWarn(ctx, err, "Could not check session revocation")
		return false
	}
}

// normaliseStoreID turns the raw _id claim into a hex string. The claim may
// be a plain string, an ObjectID("…") literal or an extended JSON {"$oid": "…"}.
func normaliseStoreID(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		v = strings.TrimSpace(v)
		if m := objectIDLiteral.FindStringSubmatch(v); m != nil {
			return m[1], nil
		}
		return v, nil
	case map[string]any:
		if oid, ok := v["$oid"].(string); ok && oid != "" {
			return oid, nil
		}
		return "", fmt.Errorf("unsupported _id object with %d keys", len(v))
	default:
		return "", fmt.Errorf("unsupported _id claim type %T", raw)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
