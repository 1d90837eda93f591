package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EmployeeRepository implements domain.EmployeeRepository using PostgreSQL
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Count returns the number of employees
func (r *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE deleted_at IS NULL`,
	).Scan(&count)
	return count, err
}
