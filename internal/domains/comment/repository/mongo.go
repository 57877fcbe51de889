package repository

import (
	"context"
	"fmt"

	"posterdeck-backend/internal/domains/comment"
	"posterdeck-backend/internal/infrastructure/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCommentRepository struct {
	col *mongo.Collection
}

func NewMongoCommentRepository(db *database.MongoDB) *MongoCommentRepository {
	return &MongoCommentRepository{col: db.Comments()}
}

func (r *MongoCommentRepository) ListByPoster(ctx context.Context, posterID string) ([]comment.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"posterId": posterID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find comments for %s: %w", posterID, err)
	}
	defer cur.Close(ctx)

	comments := []comment.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}
	return comments, nil
}

func (r *MongoCommentRepository) Create(ctx context.Context, cm *comment.Comment) error {
	res, err := r.col.InsertOne(ctx, cm)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	// Hand the database-assigned id back so the response carries it.
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		cm.ID = oid
	}
	return nil
}

func (r *MongoCommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return comment.ErrInvalidID
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return comment.ErrNotFound
	}
	return nil
}

func (r *MongoCommentRepository) DeleteByPoster(ctx context.Context, posterID string) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"posterId": posterID})
	if err != nil {
		return 0, fmt.Errorf("delete comments for %s: %w", posterID, err)
	}
	return res.DeletedCount, nil
}

func (r *MongoCommentRepository) DistinctPosterIDs(ctx context.Context) ([]string, error) {
	raw, err := r.col.Distinct(ctx, "posterId", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("distinct posterIds: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
