package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names.
const (
	UsersCollection              = "users"
	AccountsCollection           = "accounts"
	SessionsCollection           = "sessions"
	VerificationTokensCollection = "verification_tokens"
	BookmarksCollection          = "bookmarks"
)

// CollectionSource hands out collections of the application database.
// *database.MongoProvider satisfies it and connects on first use.
type CollectionSource interface {
	Collection(ctx context.Context, name string) (*mongo.Collection, error)
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	source     CollectionSource
	collection string
}

// coll resolves the repository collection. A connect failure is reported as
// a store outage.
func (r *BaseRepository) coll(ctx context.Context) (*mongo.Collection, error) {
	c, err := r.source.Collection(ctx, r.collection)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrStoreUnavailable, err)
	}
	return c, nil
}

// wrapError maps driver errors onto the application sentinels.
func wrapError(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("failed to %s: %w: %w", op, apperrors.ErrDuplicate, err)
	default:
		return fmt.Errorf("%w: failed to %s: %w", apperrors.ErrStoreUnavailable, op, err)
	}
}
