package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portside-erp/portside-backend/internal/domain"
)

// ProjectRepository implements domain.ProjectRepository using PostgreSQL
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// Count returns the number of projects
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects WHERE deleted_at IS NULL`,
	).Scan(&count)
	return count, err
}

// CountByStatus counts projects in the given status
func (r *ProjectRepository) CountByStatus(ctx context.Context, status domain.ProjectStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM projects WHERE deleted_at IS NULL AND status = $1`,
		string(status),
	).Scan(&count)
	return count, err
}

// CountGroupedByStatus returns per-status project counts, status name
// ascending
func (r *ProjectRepository) CountGroupedByStatus(ctx context.Context) ([]*domain.StatusCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT status, COUNT(*) FROM projects
		 WHERE deleted_at IS NULL
		 GROUP BY status ORDER BY status`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]*domain.StatusCount, 0)
	for rows.Next() {
		sc := &domain.StatusCount{}
		if err := rows.Scan(&sc.Name, &sc.Value); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}
