package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portside-erp/portside-backend/internal/domain"
)

// CustomerRepository implements domain.CustomerRepository using PostgreSQL
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Count returns the number of customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers WHERE deleted_at IS NULL`,
	).Scan(&count)
	return count, err
}

// CountCreatedBetween counts customers created in [start, end)
func (r *CustomerRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM customers
		 WHERE deleted_at IS NULL AND created_at >= $1 AND created_at < $2`,
		start, end,
	).Scan(&count)
	return count, err
}

// ListWithInvoices returns all customers, each with its non-cancelled
// invoices pre-loaded
func (r *CustomerRepository) ListWithInvoices(ctx context.Context) ([]*domain.CustomerWithInvoices, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, company_name, first_name, last_name, email, phone, created_at, updated_at
		 FROM customers WHERE deleted_at IS NULL ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.CustomerWithInvoices, 0)
	byID := make(map[int32]*domain.CustomerWithInvoices)
	for rows.Next() {
		c := &domain.CustomerWithInvoices{}
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.FirstName, &c.LastName,
			&c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Invoices = make([]*domain.Invoice, 0)
		customers = append(customers, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	invoiceRows, err := r.pool.Query(ctx,
		`SELECT id, customer_id, number, kind, status, total, issue_date, due_date
		 FROM invoices
		 WHERE deleted_at IS NULL AND kind = $1 AND status <> $2`,
		string(domain.KindInvoice), string(domain.InvoiceStatusCancelled),
	)
	if err != nil {
		return nil, err
	}
	defer invoiceRows.Close()

	for invoiceRows.Next() {
		inv := &domain.Invoice{}
		var total pgtype.Numeric
		if err := invoiceRows.Scan(&inv.ID, &inv.CustomerID, &inv.Number,
			&inv.Kind, &inv.Status, &total, &inv.IssueDate, &inv.DueDate); err != nil {
			return nil, err
		}
		inv.Total = pgNumericToDecimal(total)
		if c, ok := byID[inv.CustomerID]; ok {
			c.Invoices = append(c.Invoices, inv)
		}
	}
	if err := invoiceRows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}
