package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portside-erp/portside-backend/internal/domain"
)

// TaskRepository implements domain.TaskRepository using PostgreSQL
type TaskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

// CountByStatus counts tasks in the given status
func (r *TaskRepository) CountByStatus(ctx context.Context, status domain.TaskStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE deleted_at IS NULL AND status = $1`,
		string(status),
	).Scan(&count)
	return count, err
}
