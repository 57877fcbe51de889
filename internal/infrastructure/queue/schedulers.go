package queue

import (
	"encoding/json"
	"time"

	"posterdeck-backend/internal/config"
	"posterdeck-backend/internal/shared"
	"posterdeck-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddress string, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		jobConfig: jobConfig,
	}
}

func (s *Scheduler) RegisterMaintenanceJobs() error {
	if err := s.registerPurgeTrashJob(); err != nil {
		return err
	}
	if err := s.registerSweepOrphanCommentsJob(); err != nil {
		return err
	}
	return nil
}

// ================================================
// JOB 1: Purge Trash (Daily at 3 AM)
// ================================================
// Soft-deleted posters past the retention window are removed for good,
// together with their blob object and comments.
func (s *Scheduler) registerPurgeTrashJob() error {
	payload, err := json.Marshal(shared.PurgeTrashPayload{
		RetentionDays: s.jobConfig.TrashRetentionDays,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePurgeTrash, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // Daily at 3 AM
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register PurgeTrash job", err)
		return err
	}

	logger.Info("✓ Registered PurgeTrash: daily at 3 AM", map[string]interface{}{})
	return nil
}

// ================================================
// JOB 2: Sweep Orphan Comments (Daily at 4 AM)
// ================================================
// Comments reference posters by an unenforced string id; after a purge
// run, comments of since-removed posters may linger. Staggered an hour
// after the purge so the two never fight over the same records.
func (s *Scheduler) registerSweepOrphanCommentsJob() error {
	payload, err := json.Marshal(shared.SweepOrphanCommentsPayload{
		Limit: s.jobConfig.SweepBatchSize,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeSweepOrphanComments, payload)

	_, err = s.scheduler.Register(
		"0 4 * * *", // Daily at 4 AM
		task,
		asynq.Queue(shared.QueueMaintenance),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register SweepOrphanComments job", err)
		return err
	}

	logger.Info("✓ Registered SweepOrphanComments: daily at 4 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
