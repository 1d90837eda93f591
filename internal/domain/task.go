package domain

import (
	"context"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

type Task struct {
	ID        int32      `json:"id"`
	ProjectID *int32     `json:"projectId,omitempty"`
	Title     string     `json:"title"`
	Status    TaskStatus `json:"status"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// TaskRepository is the read side of task persistence used by the
// dashboard engine.
type TaskRepository interface {
	CountByStatus(ctx context.Context, status TaskStatus) (int64, error)
}
