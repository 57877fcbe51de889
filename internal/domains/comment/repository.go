package comment

import "context"

// Repository is the data access contract for comments.
type Repository interface {
	// ListByPoster returns a poster's comments, newest first.
	ListByPoster(ctx context.Context, posterID string) ([]Comment, error)

	Create(ctx context.Context, cm *Comment) error

	// Delete removes one comment. ErrNotFound when the id is unknown.
	Delete(ctx context.Context, id string) error

	// DeleteByPoster removes all of a poster's comments (purge job).
	DeleteByPoster(ctx context.Context, posterID string) (int64, error)

	// DistinctPosterIDs lists every posterId referenced by a comment.
	// Used by the orphan sweep.
	DistinctPosterIDs(ctx context.Context) ([]string, error)
}
