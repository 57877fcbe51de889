package main

import (
	"github.com/hibiken/asynq"

	commentJob "posterdeck-backend/internal/domains/comment/job"
	posterJob "posterdeck-backend/internal/domains/poster/job"
	"posterdeck-backend/internal/shared"
	"posterdeck-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Maintenance handlers
	purgeTrash   *posterJob.PurgeTrashHandler
	sweepOrphans *commentJob.SweepOrphansHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		purgeTrash:   posterJob.NewPurgeTrashHandler(c.PosterRepo, c.CommentRepo, c.Storage),
		sweepOrphans: commentJob.NewSweepOrphansHandler(c.CommentRepo, c.PosterRepo),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Maintenance tasks
	mux.HandleFunc(shared.TypePurgeTrash, h.purgeTrash.ProcessTask)
	mux.HandleFunc(shared.TypeSweepOrphanComments, h.sweepOrphans.ProcessTask)
}
