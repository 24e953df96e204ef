package repositories

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
)

// SessionRepositoryFacade stores session records keyed by their token.
type SessionRepositoryFacade interface {
	// SaveSession inserts or replaces the record for session.SessionToken.
	SaveSession(ctx context.Context, session domain.Session) error

	// FindSessionByToken returns apperrors.ErrNotFound when no record exists.
	FindSessionByToken(ctx context.Context, sessionToken string) (*domain.Session, error)

	// DeleteSession removes the record for a token. Missing records are not an error.
	DeleteSession(ctx context.Context, sessionToken string) error
}
