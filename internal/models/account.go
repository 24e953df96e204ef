package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account is the document stored in the accounts collection. Token fields
// keep the snake_case names used by the provider responses.
type Account struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserID            primitive.ObjectID `bson:"userId"`
	Type              string             `bson:"type"`
	Provider          string             `bson:"provider"`
	ProviderAccountID string             `bson:"providerAccountId"`
	AccessToken       string             `bson:"access_token,omitempty"`
	RefreshToken      string             `bson:"refresh_token,omitempty"`
	ExpiresAt         int64              `bson:"expires_at,omitempty"`
	TokenType         string             `bson:"token_type,omitempty"`
	Scope             string             `bson:"scope,omitempty"`
	IDToken           string             `bson:"id_token,omitempty"`
	SessionState      string             `bson:"session_state,omitempty"`
	AuditFields       `bson:",inline"`
}
