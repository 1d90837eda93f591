package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portside-erp/portside-backend/internal/domain"
)

// VendorRepository implements domain.VendorRepository using PostgreSQL
type VendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository creates a new VendorRepository
func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

// Count returns the number of vendors
func (r *VendorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM vendors WHERE deleted_at IS NULL`,
	).Scan(&count)
	return count, err
}

// ListWithPurchases returns all vendors, each with its non-cancelled
// purchases pre-loaded
func (r *VendorRepository) ListWithPurchases(ctx context.Context) ([]*domain.VendorWithPurchases, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, company_name, first_name, last_name, email, phone, created_at, updated_at
		 FROM vendors WHERE deleted_at IS NULL ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vendors := make([]*domain.VendorWithPurchases, 0)
	byID := make(map[int32]*domain.VendorWithPurchases)
	for rows.Next() {
		v := &domain.VendorWithPurchases{}
		if err := rows.Scan(&v.ID, &v.CompanyName, &v.FirstName, &v.LastName,
			&v.Email, &v.Phone, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		v.Purchases = make([]*domain.Purchase, 0)
		vendors = append(vendors, v)
		byID[v.ID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	purchaseRows, err := r.pool.Query(ctx,
		`SELECT id, vendor_id, number, status, total, order_date
		 FROM purchases
		 WHERE deleted_at IS NULL AND status <> $1`,
		string(domain.PurchaseStatusCancelled),
	)
	if err != nil {
		return nil, err
	}
	defer purchaseRows.Close()

	for purchaseRows.Next() {
		p := &domain.Purchase{}
		var total pgtype.Numeric
		if err := purchaseRows.Scan(&p.ID, &p.VendorID, &p.Number,
			&p.Status, &total, &p.OrderDate); err != nil {
			return nil, err
		}
		p.Total = pgNumericToDecimal(total)
		if v, ok := byID[p.VendorID]; ok {
			v.Purchases = append(v.Purchases, p)
		}
	}
	if err := purchaseRows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}
