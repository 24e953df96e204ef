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

type MongoUserRepository struct {
	BaseRepository
}

func newMongoUserRepository(source CollectionSource) *MongoUserRepository {
	return &MongoUserRepository{BaseRepository{source: source, collection: UsersCollection}}
}

// Ensure MongoUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*MongoUserRepository)(nil)

func (r *MongoUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}
	return r.findOne(ctx, bson.M{"_id": oid}, "find user by ID")
}

func (r *MongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, "find user by email")
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, op string) (*domain.User, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	var m models.User
	if err := coll.FindOne(ctx, filter).Decode(&m); err != nil {
		return nil, wrapError(op, err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	m := mapping.ToModelUser(user)
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	if _, err := coll.InsertOne(ctx, m); err != nil {
		return nil, wrapError("create user", err)
	}
	created := mapping.ToDomainUser(m)
	return &created, nil
}

func (r *MongoUserRepository) UpdateUserProfile(ctx context.Context, userID, name, image string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"name": name, "image": image, "updatedAt": time.Now().UTC()}}
	res, err := coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return wrapError("update user profile", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, userID string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}
	coll, err := r.coll(ctx)
	if err != nil {
		return err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return wrapError("delete user", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
