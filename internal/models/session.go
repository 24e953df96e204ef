package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is the document stored in the sessions collection.
type Session struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	SessionToken string             `bson:"sessionToken"`
	UserID       string             `bson:"userId"`
	Expires      time.Time          `bson:"expires"`
}

// VerificationToken is the document stored in the verification_tokens collection.
type VerificationToken struct {
	Identifier string    `bson:"identifier"`
	Token      string    `bson:"token"`
	Expires    time.Time `bson:"expires"`
}
