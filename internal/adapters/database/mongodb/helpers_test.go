package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// dbSource serves collections of a fixed database, as handed out by mtest.
type dbSource struct {
	db *mongo.Database
}

func (s dbSource) Collection(_ context.Context, name string) (*mongo.Collection, error) {
	return s.db.Collection(name), nil
}

// downSource simulates a store that cannot be reached.
type downSource struct{}

func (downSource) Collection(context.Context, string) (*mongo.Collection, error) {
	return nil, errors.New("server selection timeout")
}
