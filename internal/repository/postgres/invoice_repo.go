package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portside-erp/portside-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// InvoiceRepository implements domain.InvoiceRepository using PostgreSQL.
// Invoices and quotations share one table, discriminated by kind.
type InvoiceRepository struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

// openStatuses returns OpenInvoiceStatuses as strings for use with ANY
func openStatuses() []string {
	statuses := make([]string, len(domain.OpenInvoiceStatuses))
	for i, s := range domain.OpenInvoiceStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

// CountByKind counts records of the given kind
func (r *InvoiceRepository) CountByKind(ctx context.Context, kind domain.InvoiceKind) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices WHERE deleted_at IS NULL AND kind = $1`,
		string(kind),
	).Scan(&count)
	return count, err
}

// CountByStatus counts invoices in the given status
func (r *InvoiceRepository) CountByStatus(ctx context.Context, status domain.InvoiceStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices
		 WHERE deleted_at IS NULL AND kind = $1 AND status = $2`,
		string(domain.KindInvoice), string(status),
	).Scan(&count)
	return count, err
}

// CountOverdue counts open invoices due before asOf
func (r *InvoiceRepository) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices
		 WHERE deleted_at IS NULL AND kind = $1 AND status = ANY($2) AND due_date < $3`,
		string(domain.KindInvoice), openStatuses(), asOf,
	).Scan(&count)
	return count, err
}

// CountIssuedBetween counts invoices issued in [start, end)
func (r *InvoiceRepository) CountIssuedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM invoices
		 WHERE deleted_at IS NULL AND kind = $1
		   AND issue_date >= $2 AND issue_date < $3`,
		string(domain.KindInvoice), start, end,
	).Scan(&count)
	return count, err
}

// SumTotalBetween sums non-cancelled invoice totals issued in [start, end)
func (r *InvoiceRepository) SumTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total pgtype.Numeric
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM invoices
		 WHERE deleted_at IS NULL AND kind = $1 AND status <> $2
		   AND issue_date >= $3 AND issue_date < $4`,
		string(domain.KindInvoice), string(domain.InvoiceStatusCancelled), start, end,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return pgNumericToDecimal(total), nil
}
