package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"posterdeck-backend/internal/domains/poster"
	"posterdeck-backend/internal/infrastructure/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notDeleted excludes soft-deleted records from every default read.
var notDeleted = bson.M{"deletedAt": bson.M{"$exists": false}}

type MongoPosterRepository struct {
	col *mongo.Collection
}

func NewMongoPosterRepository(db *database.MongoDB) *MongoPosterRepository {
	return &MongoPosterRepository{col: db.Posters()}
}

func (r *MongoPosterRepository) List(ctx context.Context) ([]poster.Poster, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cur, err := r.col.Find(ctx, notDeleted, opts)
	if err != nil {
		return nil, fmt.Errorf("find posters: %w", err)
	}
	defer cur.Close(ctx)

	posters := []poster.Poster{}
	if err := cur.All(ctx, &posters); err != nil {
		return nil, fmt.Errorf("decode posters: %w", err)
	}
	return posters, nil
}

func (r *MongoPosterRepository) GetByID(ctx context.Context, id string) (*poster.Poster, error) {
	filter := bson.M{"_id": id, "deletedAt": bson.M{"$exists": false}}

	var p poster.Poster
	err := r.col.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, poster.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find poster %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPosterRepository) Create(ctx context.Context, p *poster.Poster) error {
	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert poster: %w", err)
	}
	return nil
}

func (r *MongoPosterRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	filter := bson.M{"_id": id, "deletedAt": bson.M{"$exists": false}}
	update := bson.M{"$set": bson.M{"deletedAt": at.UTC()}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("soft delete poster %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return poster.ErrNotFound
	}
	return nil
}

func (r *MongoPosterRepository) ListTrashedBefore(ctx context.Context, cutoff time.Time) ([]poster.Poster, error) {
	filter := bson.M{"deletedAt": bson.M{"$lt": cutoff.UTC()}}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find trashed posters: %w", err)
	}
	defer cur.Close(ctx)

	posters := []poster.Poster{}
	if err := cur.All(ctx, &posters); err != nil {
		return nil, fmt.Errorf("decode trashed posters: %w", err)
	}
	return posters, nil
}

func (r *MongoPosterRepository) HardDelete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("hard delete poster %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return poster.ErrNotFound
	}
	return nil
}

func (r *MongoPosterRepository) Exists(ctx context.Context, id string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count poster %s: %w", id, err)
	}
	return count > 0, nil
}
