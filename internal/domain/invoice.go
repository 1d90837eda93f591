package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceKind string
type InvoiceStatus string

const (
	KindInvoice   InvoiceKind = "invoice"
	KindQuotation InvoiceKind = "quotation"
)

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// OpenInvoiceStatuses are the statuses an unpaid invoice can sit in. An
// invoice in one of these states past its due date counts as overdue.
var OpenInvoiceStatuses = []InvoiceStatus{InvoiceStatusDraft, InvoiceStatusPending}

type Invoice struct {
	ID         int32           `json:"id"`
	CustomerID int32           `json:"customerId"`
	Number     string          `json:"number"`
	Kind       InvoiceKind     `json:"kind"`
	Status     InvoiceStatus   `json:"status"`
	Total      decimal.Decimal `json:"total"`
	IssueDate  time.Time       `json:"issueDate"`
	DueDate    time.Time       `json:"dueDate"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	DeletedAt  *time.Time      `json:"deletedAt,omitempty"`
}

// InvoiceRepository is the read side of invoice persistence used by the
// dashboard engine. Every monetary sum excludes cancelled invoices; date
// windows are half-open [start, end).
type InvoiceRepository interface {
	CountByKind(ctx context.Context, kind InvoiceKind) (int64, error)
	CountByStatus(ctx context.Context, status InvoiceStatus) (int64, error)
	// CountOverdue counts open invoices whose due date is before asOf.
	CountOverdue(ctx context.Context, asOf time.Time) (int64, error)
	CountIssuedBetween(ctx context.Context, start, end time.Time) (int64, error)
	// SumTotalBetween sums invoice totals issued in [start, end),
	// quotations and cancelled invoices excluded.
	SumTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}
