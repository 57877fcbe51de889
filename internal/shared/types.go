package shared

// Task types routed through the asynq worker.
const (
	TypePurgeTrash          = "poster:purge_trash"
	TypeSweepOrphanComments = "comment:sweep_orphans"
)

// Queue names, ordered by priority in the worker config.
const (
	QueueDefault     = "default"
	QueueMaintenance = "low"
)

// PurgeTrashPayload configures one trash purge run.
type PurgeTrashPayload struct {
	RetentionDays int `json:"retentionDays"`
}

// SweepOrphanCommentsPayload configures one orphan sweep run.
type SweepOrphanCommentsPayload struct {
	Limit int `json:"limit"`
}
