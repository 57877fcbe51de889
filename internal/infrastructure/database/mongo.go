package database

import (
	"context"
	"fmt"
	"time"

	"posterdeck-backend/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	PostersCollection  = "posters"
	CommentsCollection = "comments"
)

// MongoDB wraps the driver client and the application database.
// Constructed once at process start and injected into repositories;
// the driver pools connections internally.
type MongoDB struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewMongoDB connects, pings, and bootstraps indexes.
func NewMongoDB(ctx context.Context, cfg config.MongoConfig) (*MongoDB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	db := &MongoDB{
		Client: client,
		DB:     client.Database(cfg.Database),
	}

	if err := db.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	return db, nil
}

func (m *MongoDB) Posters() *mongo.Collection {
	return m.DB.Collection(PostersCollection)
}

func (m *MongoDB) Comments() *mongo.Collection {
	return m.DB.Collection(CommentsCollection)
}

// ensureIndexes creates the indexes every read path depends on.
// Comments are always filtered by posterId; posters are always read
// newest-first with soft-deleted records excluded.
func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	_, err := m.Comments().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "posterId", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("comments indexes: %w", err)
	}

	_, err = m.Posters().Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "uploadedAt", Value: -1}}},
		{Keys: bson.D{{Key: "deletedAt", Value: 1}}, Options: options.Index().SetSparse(true)},
	})
	if err != nil {
		return fmt.Errorf("posters indexes: %w", err)
	}

	return nil
}

func (m *MongoDB) HealthCheck(ctx context.Context) error {
	if m.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := m.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	if m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}
