package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes mirrors the index migrations under migrations/.
var collectionIndexes = map[string][]mongo.IndexModel{
	UsersCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("users_email_unique").SetUnique(true)},
	},
	AccountsCollection: {
		{Keys: bson.D{{Key: "provider", Value: 1}, {Key: "providerAccountId", Value: 1}}, Options: options.Index().SetName("accounts_provider_account_unique").SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "provider", Value: 1}}, Options: options.Index().SetName("accounts_user_provider")},
	},
	SessionsCollection: {
		{Keys: bson.D{{Key: "sessionToken", Value: 1}}, Options: options.Index().SetName("sessions_token_unique").SetUnique(true)},
		{Keys: bson.D{{Key: "expires", Value: 1}}, Options: options.Index().SetName("sessions_expires_ttl").SetExpireAfterSeconds(0)},
	},
	VerificationTokensCollection: {
		{Keys: bson.D{{Key: "identifier", Value: 1}, {Key: "token", Value: 1}}, Options: options.Index().SetName("verification_tokens_unique").SetUnique(true)},
		{Keys: bson.D{{Key: "expires", Value: 1}}, Options: options.Index().SetName("verification_tokens_expires_ttl").SetExpireAfterSeconds(0)},
	},
	BookmarksCollection: {
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "articleId", Value: 1}}, Options: options.Index().SetName("bookmarks_user_article_unique").SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("bookmarks_user_created")},
	},
}

// EnsureIndexes creates every index the repositories rely on. It is used
// when migrations are disabled; creating an existing index is a no-op.
func EnsureIndexes(ctx context.Context, source CollectionSource) error {
	for _, name := range []string{UsersCollection, AccountsCollection, SessionsCollection, VerificationTokensCollection, BookmarksCollection} {
		coll, err := source.Collection(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", name, err)
		}
		if _, err := coll.Indexes().CreateMany(ctx, collectionIndexes[name]); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return nil
}
