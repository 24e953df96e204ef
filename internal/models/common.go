package models

import "time"

// AuditFields are the timestamps kept on identity and bookmark documents.
type AuditFields struct {
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
