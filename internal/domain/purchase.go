package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseStatus string

const (
	PurchaseStatusOrdered   PurchaseStatus = "ordered"
	PurchaseStatusReceived  PurchaseStatus = "received"
	PurchaseStatusPaid      PurchaseStatus = "paid"
	PurchaseStatusCancelled PurchaseStatus = "cancelled"
)

type Purchase struct {
	ID        int32           `json:"id"`
	VendorID  int32           `json:"vendorId"`
	Number    string          `json:"number"`
	Status    PurchaseStatus  `json:"status"`
	Total     decimal.Decimal `json:"total"`
	OrderDate time.Time       `json:"orderDate"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *time.Time      `json:"deletedAt,omitempty"`
}

// PurchaseRepository is the read side of purchase persistence used by the
// dashboard engine. Cancelled purchases are excluded from every sum.
type PurchaseRepository interface {
	// SumTotal sums all purchase totals regardless of date.
	SumTotal(ctx context.Context) (decimal.Decimal, error)
	// SumTotalBetween sums purchase totals ordered in [start, end).
	SumTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}
