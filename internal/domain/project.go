package domain

import (
	"context"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID         int32         `json:"id"`
	CustomerID *int32        `json:"customerId,omitempty"`
	VesselID   *int32        `json:"vesselId,omitempty"`
	Name       string        `json:"name"`
	Status     ProjectStatus `json:"status"`
	StartDate  *time.Time    `json:"startDate,omitempty"`
	EndDate    *time.Time    `json:"endDate,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	DeletedAt  *time.Time    `json:"deletedAt,omitempty"`
}

// StatusCount is one bucket of a group-by-status aggregation.
type StatusCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// ProjectRepository is the read side of project persistence used by the
// dashboard engine.
type ProjectRepository interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status ProjectStatus) (int64, error)
	CountGroupedByStatus(ctx context.Context) ([]*StatusCount, error)
}
