package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/news_digest_app/internal/apperrors"
	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_digest_app/internal/models"
	"github.com/SscSPs/news_digest_app/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MongoAccountRepository struct {
	BaseRepository
}

func newMongoAccountRepository(source CollectionSource) *MongoAccountRepository {
	return &MongoAccountRepository{BaseRepository{source: source, collection: AccountsCollection}}
}

var _ portsrepo.AccountRepositoryFacade = (*MongoAccountRepository)(nil)

func (r *MongoAccountRepository) FindAccountByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("account of user %q: %w", userID, apperrors.ErrNotFound)
	}
	return r.findOne(ctx, bson.M{"userId": oid, "provider": string(provider)}, "find account by user and provider")
}

func (r *MongoAccountRepository) FindAccountByProviderAccountID(ctx context.Context, provider domain.Provider, providerAccountID string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"provider": string(provider), "providerAccountId": providerAccountID}, "find account by provider account ID")
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M, op string) (*domain.Account, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	var m models.Account
	if err := coll.FindOne(ctx, filter).Decode(&m); err != nil {
		return nil, wrapError(op, err)
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func (r *MongoAccountRepository) LinkAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	if !primitive.IsValidObjectID(account.UserID) {
		return nil, fmt.Errorf("link account: user id %q: %w", account.UserID, apperrors.ErrValidation)
	}
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	m := mapping.ToModelAccount(account)
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if m.Type == "" {
		m.Type = domain.AccountTypeOAuth
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, m); err != nil {
		return nil, wrapError("link account", err)
	}
	linked := mapping.ToDomainAccount(m)
	return &linked, nil
}

// UpdateAccountTokens only touches the token fields; the binding itself is immutable.
func (r *MongoAccountRepository) UpdateAccountTokens(ctx context.Context, accountID string, tokens domain.TokenSet) error {
	oid, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return fmt.Errorf("account %q: %w", accountID, apperrors.ErrNotFound)
	}
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_at":    tokens.ExpiresAt,
		"token_type":    tokens.TokenType,
		"scope":         tokens.Scope,
		"id_token":      tokens.IDToken,
		"session_state": tokens.SessionState,
		"updatedAt":     time.Now().UTC(),
	}}
	res, err := coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return wrapError("update account tokens", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}
