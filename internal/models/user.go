package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the document stored in the users collection.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	Image         string             `bson:"image,omitempty"`
	EmailVerified *time.Time         `bson:"emailVerified,omitempty"`
	AuditFields   `bson:",inline"`
}
