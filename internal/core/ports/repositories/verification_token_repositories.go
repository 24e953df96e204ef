package repositories

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
)

// VerificationTokenRepositoryFacade stores single-use verification tokens.
type VerificationTokenRepositoryFacade interface {
	// CreateVerificationToken inserts a token. A repeated (identifier, token) yields apperrors.ErrDuplicate.
	CreateVerificationToken(ctx context.Context, token domain.VerificationToken) error

	// UseVerificationToken atomically removes and returns the token.
	// Returns apperrors.ErrNotFound when it does not exist or was already used.
	UseVerificationToken(ctx context.Context, identifier, token string) (*domain.VerificationToken, error)
}
