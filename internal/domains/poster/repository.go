package poster

import (
	"context"
	"time"
)

// Repository is the data access contract for posters.
type Repository interface {
	// List returns all non-deleted posters, newest upload first.
	List(ctx context.Context) ([]Poster, error)

	// GetByID returns a non-deleted poster or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Poster, error)

	Create(ctx context.Context, p *Poster) error

	// SoftDelete stamps deletedAt on a live poster.
	// Returns ErrNotFound when the id is unknown or already trashed.
	SoftDelete(ctx context.Context, id string, at time.Time) error

	// ListTrashedBefore returns posters soft-deleted before cutoff.
	// Used by the purge job.
	ListTrashedBefore(ctx context.Context, cutoff time.Time) ([]Poster, error)

	// HardDelete removes the record outright. Purge job only.
	HardDelete(ctx context.Context, id string) error

	// Exists reports whether any record (trashed or not) has this id.
	// The orphan sweep keeps comments of trashed posters.
	Exists(ctx context.Context, id string) (bool, error)
}
