package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/news_digest_app/internal/core/ports/services"
)

type identityResolver struct {
	BaseService
	userRepo    portsrepo.UserReader
	accountRepo portsrepo.AccountReader
}

// NewIdentityResolver creates the resolver that keeps one email bound to one provider.
func NewIdentityResolver(userRepo portsrepo.UserReader, accountRepo portsrepo.AccountReader) portssvc.IdentityResolverSvc {
	return &identityResolver{userRepo: userRepo, accountRepo: accountRepo}
}

var _ portssvc.IdentityResolverSvc = (*identityResolver)(nil)

// Resolve fails closed: when the store cannot answer, the attempt is rejected
// with the generic callback error.
func (s *identityResolver) Resolve(ctx context.Context, attempt domain.SignInAttempt) (domain.SignInDecision, error) {
	if attempt.Email == "" {
		return domain.SignInDecision{Accepted: true}, nil
	}

	user, err := s.userRepo.FindUserByEmail(ctx, attempt.Email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.SignInDecision{Accepted: true}, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to look up user by email", slog.String("provider", string(attempt.Provider)))
		return reject(domain.SignInErrorCallback, ""), apperrors.NewTransientStoreError("failed to look up user by email", err)
	}

	_, err = s.accountRepo.FindAccountByUserAndProvider(ctx, user.ID, attempt.Provider)
	switch {
	case err == nil:
		return domain.SignInDecision{Accepted: true}, nil
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogInfo(ctx, "Sign-in rejected, email registered with another provider",
			slog.String("user_id", user.ID),
			slog.String("provider", string(attempt.Provider)))
		return reject(domain.SignInErrorDuplicateEmail, attempt.Provider),
			apperrors.NewConflictError("sign-in with "+string(attempt.Provider)+" rejected", apperrors.ErrDuplicateEmail)
	default:
		s.LogError(ctx, err, "Failed to look up account", slog.String("user_id", user.ID))
		return reject(domain.SignInErrorCallback, ""), apperrors.NewTransientStoreError("failed to look up account", err)
	}
}

func reject(code string, provider domain.Provider) domain.SignInDecision {
	return domain.SignInDecision{
		Accepted:    false,
		ErrorCode:   code,
		RedirectURL: domain.AuthErrorPath(code, provider),
	}
}
