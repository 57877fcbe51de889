package job

import (
	"context"
	"encoding/json"
	"fmt"

	"posterdeck-backend/internal/domains/comment"
	"posterdeck-backend/internal/domains/poster"
	"posterdeck-backend/internal/shared"
	"posterdeck-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// SweepOrphansHandler deletes comments whose poster record is gone.
// Comments of soft-deleted posters are kept: the poster may come back
// out of trash until the purge runs.
type SweepOrphansHandler struct {
	comments comment.Repository
	posters  poster.Repository
}

func NewSweepOrphansHandler(comments comment.Repository, posters poster.Repository) *SweepOrphansHandler {
	return &SweepOrphansHandler{comments: comments, posters: posters}
}

func (h *SweepOrphansHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.SweepOrphanCommentsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal sweep payload: %w", err)
	}

	posterIDs, err := h.comments.DistinctPosterIDs(ctx)
	if err != nil {
		return fmt.Errorf("list referenced posters: %w", err)
	}

	var removed int64
	for _, id := range posterIDs {
		exists, err := h.posters.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check poster %s: %w", id, err)
		}
		if exists {
			continue
		}

		n, err := h.comments.DeleteByPoster(ctx, id)
		if err != nil {
			return fmt.Errorf("sweep comments of %s: %w", id, err)
		}
		removed += n

		if payload.Limit > 0 && removed >= int64(payload.Limit) {
			break
		}
	}

	logger.Info("Orphan comment sweep finished", map[string]interface{}{
		"referenced_posters": len(posterIDs),
		"removed":            removed,
	})
	return nil
}
