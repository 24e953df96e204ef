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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoBookmarkRepository struct {
	BaseRepository
}

func newMongoBookmarkRepository(source CollectionSource) *MongoBookmarkRepository {
	return &MongoBookmarkRepository{BaseRepository{source: source, collection: BookmarksCollection}}
}

var _ portsrepo.BookmarkRepositoryFacade = (*MongoBookmarkRepository)(nil)

func (r *MongoBookmarkRepository) ListBookmarksByUser(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, wrapError("query bookmarks", err)
	}
	defer cursor.Close(ctx)

	ms := []models.Bookmark{}
	if err := cursor.All(ctx, &ms); err != nil {
		return nil, wrapError("decode bookmarks", err)
	}
	return mapping.ToDomainBookmarkSlice(ms), nil
}

func (r *MongoBookmarkRepository) FindBookmark(ctx context.Context, userID, articleID string) (*domain.Bookmark, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	var m models.Bookmark
	if err := coll.FindOne(ctx, bson.M{"userId": userID, "articleId": articleID}).Decode(&m); err != nil {
		return nil, wrapError("find bookmark", err)
	}
	bookmark := mapping.ToDomainBookmark(m)
	return &bookmark, nil
}

func (r *MongoBookmarkRepository) CreateBookmark(ctx context.Context, bookmark domain.Bookmark) (*domain.Bookmark, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	m := mapping.ToModelBookmark(bookmark)
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	}

	if _, err := coll.InsertOne(ctx, m); err != nil {
		return nil, wrapError("create bookmark", err)
	}
	created := mapping.ToDomainBookmark(m)
	return &created, nil
}

func (r *MongoBookmarkRepository) DeleteBookmark(ctx context.Context, userID, articleID string) error {
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"userId": userID, "articleId": articleID})
	if err != nil {
		return wrapError("delete bookmark", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("bookmark %s: %w", articleID, apperrors.ErrNotFound)
	}
	return nil
}
