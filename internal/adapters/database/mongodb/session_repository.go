package mongodb

import (
	"context"

	"github.com/SscSPs/news_digest_app/internal/core/domain"
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
	"github.com/SscSPs/news_digest_app/internal/models"
	"github.com/SscSPs/news_digest_app/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoSessionRepository struct {
	BaseRepository
}

func newMongoSessionRepository(source CollectionSource) *MongoSessionRepository {
	return &MongoSessionRepository{BaseRepository{source: source, collection: SessionsCollection}}
}

var _ portsrepo.SessionRepositoryFacade = (*MongoSessionRepository)(nil)

func (r *MongoSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	m := mapping.ToModelSession(session)
	filter := bson.M{"sessionToken": m.SessionToken}
	if _, err := coll.ReplaceOne(ctx, filter, m, options.Replace().SetUpsert(true)); err != nil {
		return wrapError("save session", err)
	}
	return nil
}

func (r *MongoSessionRepository) FindSessionByToken(ctx context.Context, sessionToken string) (*domain.Session, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	var m models.Session
	if err := coll.FindOne(ctx, bson.M{"sessionToken": sessionToken}).Decode(&m); err != nil {
		return nil, wrapError("find session by token", err)
	}
	session := mapping.ToDomainSession(m)
	return &session, nil
}

func (r *MongoSessionRepository) DeleteSession(ctx context.Context, sessionToken string) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	if _, err := coll.DeleteOne(ctx, bson.M{"sessionToken": sessionToken}); err != nil {
		return wrapError("delete session", err)
	}
	return nil
}
