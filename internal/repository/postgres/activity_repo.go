package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portside-erp/portside-backend/internal/domain"
)

// ActivityRepository implements domain.ActivityRepository using PostgreSQL
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// ListRecent returns up to limit entries, newest first, with the actor's
// name resolved from the employees table
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id,
		        COALESCE(e.first_name || ' ' || e.last_name, 'System'),
		        a.action, a.entity, a.created_at
		 FROM activities a
		 LEFT JOIN employees e ON e.id = a.actor_id
		 ORDER BY a.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0, limit)
	for rows.Next() {
		a := &domain.Activity{}
		if err := rows.Scan(&a.ID, &a.ActorName, &a.Action, &a.Entity, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
