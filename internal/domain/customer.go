package domain

import (
	"context"
	"time"
)

type Customer struct {
	ID int32 `json:"id"`
	Party
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// CustomerWithInvoices carries a customer together with its non-cancelled
// invoices, pre-loaded for the revenue ranking.
type CustomerWithInvoices struct {
	Customer
	Invoices []*Invoice `json:"invoices"`
}

// CustomerRepository is the read side of customer persistence used by the
// dashboard engine.
type CustomerRepository interface {
	Count(ctx context.Context) (int64, error)
	// CountCreatedBetween counts customers created in [start, end).
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
	ListWithInvoices(ctx context.Context) ([]*CustomerWithInvoices, error)
}
