package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"posterdeck-backend/internal/domains/comment"
	"posterdeck-backend/internal/domains/poster"
	"posterdeck-backend/internal/infrastructure/storage"
	"posterdeck-backend/internal/shared"
	"posterdeck-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// PurgeTrashHandler hard-deletes posters whose soft-delete timestamp is
// older than the retention window, removing the blob object and the
// poster's comments along with the record.
type PurgeTrashHandler struct {
	posters  poster.Repository
	comments comment.Repository
	storage  *storage.MinIOStorage
}

func NewPurgeTrashHandler(posters poster.Repository, comments comment.Repository, st *storage.MinIOStorage) *PurgeTrashHandler {
	return &PurgeTrashHandler{
		posters:  posters,
		comments: comments,
		storage:  st,
	}
}

func (h *PurgeTrashHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.PurgeTrashPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal purge payload: %w", err)
	}
	if payload.RetentionDays < 1 {
		payload.RetentionDays = 30
	}

	cutoff := time.Now().AddDate(0, 0, -payload.RetentionDays)

	trashed, err := h.posters.ListTrashedBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("list trashed posters: %w", err)
	}

	purged := 0
	for _, p := range trashed {
		if err := h.purgeOne(ctx, &p); err != nil {
			// Keep going; a single bad record must not wedge the run.
			logger.Error(fmt.Sprintf("purge poster %s", p.ID), err)
			continue
		}
		purged++
	}

	logger.Info("Trash purge finished", map[string]interface{}{
		"candidates": len(trashed),
		"purged":     purged,
	})
	return nil
}

// purgeOne removes the blob first: if storage fails we leave the record
// in trash and retry next run, instead of stranding an unreferenced
// object forever.
func (h *PurgeTrashHandler) purgeOne(ctx context.Context, p *poster.Poster) error {
	if key, ok := h.storage.KeyFromURL(p.FileURL); ok {
		if err := h.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete blob: %w", err)
		}
	}

	if _, err := h.comments.DeleteByPoster(ctx, p.ID); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}

	if err := h.posters.HardDelete(ctx, p.ID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
