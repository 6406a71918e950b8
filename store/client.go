package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewClient(cfg *Config) (*mongo.Client, error) {
	ctx, cancel := NewDbContext()
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.GetConnectionString()))
	if err != nil {
		return nil, fmt.Errorf("unable to connect to mongo: %w", err)
	}

	return client, nil
}

func NewDatabase(client *mongo.Client, cfg *Config) (*mongo.Database, error) {
	return client.Database(cfg.DatabaseName), nil
}
