package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portside-erp/portside-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// PurchaseRepository implements domain.PurchaseRepository using PostgreSQL
type PurchaseRepository struct {
	pool *pgxpool.Pool
}

// NewPurchaseRepository creates a new PurchaseRepository
func NewPurchaseRepository(pool *pgxpool.Pool) *PurchaseRepository {
	return &PurchaseRepository{pool: pool}
}

// SumTotal sums all non-cancelled purchase totals
func (r *PurchaseRepository) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM purchases
		 WHERE deleted_at IS NULL AND status <> $1`,
		string(domain.PurchaseStatusCancelled),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}

// SumTotalBetween sums non-cancelled purchase totals ordered in [start, end)
func (r *PurchaseRepository) SumTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM purchases
		 WHERE deleted_at IS NULL AND status <> $1
		   AND order_date >= $2 AND order_date < $3`,
		string(domain.PurchaseStatusCancelled), start, end,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}
