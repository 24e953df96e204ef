package mongodb

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_digest_app/internal/models"
	"github.com/SscSPs/news_digest_app/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
)

type MongoVerificationTokenRepository struct {
	BaseRepository
}

func newMongoVerificationTokenRepository(source CollectionSource) *MongoVerificationTokenRepository {
	return &MongoVerificationTokenRepository{BaseRepository{source: source, collection: VerificationTokensCollection}}
}

var _ portsrepo.VerificationTokenRepositoryFacade = (*MongoVerificationTokenRepository)(nil)

func (r *MongoVerificationTokenRepository) CreateVerificationToken(ctx context.Context, token domain.VerificationToken) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.InsertOne(ctx, mapping.ToModelVerificationToken(token)); err != nil {
		return wrapError("create verification token", err)
	}
	return nil
}

// UseVerificationToken removes the token in the same operation that reads it,
// so a token can be used at most once.
func (r *MongoVerificationTokenRepository) UseVerificationToken(ctx context.Context, identifier, token string) (*domain.VerificationToken, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	var m models.VerificationToken
	err = coll.FindOneAndDelete(ctx, bson.M{"identifier": identifier, "token": token}).Decode(&m)
	if err != nil {
		return nil, wrapError("use verification token", err)
	}
	vt := mapping.ToDomainVerificationToken(m)
	return &vt, nil
}
