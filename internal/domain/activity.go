package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Activity is one entry in the audit feed, with the actor's name already
// resolved by the repository.
type Activity struct {
	ID        uuid.UUID `json:"id"`
	ActorName string    `json:"actorName"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	CreatedAt time.Time `json:"createdAt"`
}

type ActivityRepository interface {
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Activity, error)
}
