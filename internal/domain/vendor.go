package domain

import (
	"context"
	"time"
)

type Vendor struct {
	ID int32 `json:"id"`
	Party
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// VendorWithPurchases carries a vendor together with its non-cancelled
// purchases, pre-loaded for the spend ranking.
type VendorWithPurchases struct {
	Vendor
	Purchases []*Purchase `json:"purchases"`
}

// VendorRepository is the read side of vendor persistence used by the
// dashboard engine.
type VendorRepository interface {
	Count(ctx context.Context) (int64, error)
	ListWithPurchases(ctx context.Context) ([]*VendorWithPurchases, error)
}
