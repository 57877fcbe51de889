package job

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"posterdeck-backend/internal/domains/comment"
	"posterdeck-backend/internal/domains/poster"
	"posterdeck-backend/internal/shared"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubCommentRepo struct {
	byPoster map[string][]comment.Comment
}

func (r *stubCommentRepo) ListByPoster(ctx context.Context, posterID string) ([]comment.Comment, error) {
	return r.byPoster[posterID], nil
}

func (r *stubCommentRepo) Create(ctx context.Context, cm *comment.Comment) error {
	cm.ID = primitive.NewObjectID()
	r.byPoster[cm.PosterID] = append(r.byPoster[cm.PosterID], *cm)
	return nil
}

func (r *stubCommentRepo) Delete(ctx context.Context, id string) error {
	return comment.ErrNotFound
}

func (r *stubCommentRepo) DeleteByPoster(ctx context.Context, posterID string) (int64, error) {
	n := int64(len(r.byPoster[posterID]))
	delete(r.byPoster, posterID)
	return n, nil
}

func (r *stubCommentRepo) DistinctPosterIDs(ctx context.Context) ([]string, error) {
	var out []string
	for id := range r.byPoster {
		out = append(out, id)
	}
	return out, nil
}

type stubPosterRepo struct {
	existing map[string]bool
}

func (r *stubPosterRepo) List(ctx context.Context) ([]poster.Poster, error) { return nil, nil }

func (r *stubPosterRepo) GetByID(ctx context.Context, id string) (*poster.Poster, error) {
	return nil, poster.ErrNotFound
}

func (r *stubPosterRepo) Create(ctx context.Context, p *poster.Poster) error { return nil }

func (r *stubPosterRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	return nil
}

func (r *stubPosterRepo) ListTrashedBefore(ctx context.Context, cutoff time.Time) ([]poster.Poster, error) {
	return nil, nil
}

func (r *stubPosterRepo) HardDelete(ctx context.Context, id string) error { return nil }

func (r *stubPosterRepo) Exists(ctx context.Context, id string) (bool, error) {
	return r.existing[id], nil
}

func sweepTask(t *testing.T, limit int) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(shared.SweepOrphanCommentsPayload{Limit: limit})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeSweepOrphanComments, payload)
}

func TestSweepRemovesOrphanComments(t *testing.T) {
	comments := &stubCommentRepo{byPoster: map[string][]comment.Comment{}}
	posters := &stubPosterRepo{existing: map[string]bool{"live": true}}

	ctx := context.Background()
	require.NoError(t, comments.Create(ctx, comment.NewComment("live", 1, "stays", "a")))
	require.NoError(t, comments.Create(ctx, comment.NewComment("purged", 1, "goes", "b")))
	require.NoError(t, comments.Create(ctx, comment.NewComment("purged", 2, "goes too", "c")))

	h := NewSweepOrphansHandler(comments, posters)
	require.NoError(t, h.ProcessTask(ctx, sweepTask(t, 0)))

	assert.Len(t, comments.byPoster["live"], 1, "comments of existing posters survive")
	assert.Empty(t, comments.byPoster["purged"])
}

func TestSweepKeepsCommentsOfTrashedPosters(t *testing.T) {
	// A trashed poster still Exists until the purge job removes it; its
	// comments must survive the sweep so an undelete window stays whole.
	comments := &stubCommentRepo{byPoster: map[string][]comment.Comment{}}
	posters := &stubPosterRepo{existing: map[string]bool{"trashed": true}}

	ctx := context.Background()
	require.NoError(t, comments.Create(ctx, comment.NewComment("trashed", 1, "kept", "a")))

	h := NewSweepOrphansHandler(comments, posters)
	require.NoError(t, h.ProcessTask(ctx, sweepTask(t, 0)))

	assert.Len(t, comments.byPoster["trashed"], 1)
}

func TestSweepRejectsMalformedPayload(t *testing.T) {
	h := NewSweepOrphansHandler(
		&stubCommentRepo{byPoster: map[string][]comment.Comment{}},
		&stubPosterRepo{existing: map[string]bool{}},
	)

	task := asynq.NewTask(shared.TypeSweepOrphanComments, []byte("{not json"))
	assert.Error(t, h.ProcessTask(context.Background(), task))
}
