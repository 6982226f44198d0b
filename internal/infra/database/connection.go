package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	leadsCollection    = "leads"
	agentsCollection   = "sales_agents"
	commentsCollection = "comments"
)

// Connect opens the client, proves the server is reachable with a bounded
// ping, and ensures the query indexes exist. The returned client is the
// process-wide store handle; the caller owns its Disconnect.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetMinPoolSize(2)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	db := client.Database(dbName)

	if err := ensureIndexes(ctx, db); err != nil {
		return nil, nil, err
	}

	return client, db, nil
}

// ensureIndexes creates the non-unique indexes the filtered queries and
// reports lean on. Agent email uniqueness is a pre-check in the write path,
// not an index.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	collections := map[string][]mongo.IndexModel{
		leadsCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "sales_agent_id", Value: 1}}},
			{Keys: bson.D{{Key: "source", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "closed_at", Value: 1}}},
		},
		agentsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		commentsCollection: {
			{Keys: bson.D{{Key: "lead_id", Value: 1}}},
		},
	}

	for name, indexes := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("creating indexes for %s: %w", name, err)
		}
	}

	return nil
}
