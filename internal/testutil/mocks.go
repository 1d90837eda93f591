package testutil

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/portside-erp/portside-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// inWindow reports whether t falls in the half-open window [start, end),
// mirroring the SQL predicates of the real repositories.
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// MockCustomerRepository is an in-memory implementation of
// domain.CustomerRepository. Calls counts every method invocation so tests
// can assert that short-circuit paths never touch the repository.
type MockCustomerRepository struct {
	Customers []*domain.CustomerWithInvoices
	Calls     atomic.Int64

	CountFn               func(ctx context.Context) (int64, error)
	CountCreatedBetweenFn func(ctx context.Context, start, end time.Time) (int64, error)
	ListWithInvoicesFn    func(ctx context.Context) ([]*domain.CustomerWithInvoices, error)
}

// NewMockCustomerRepository creates a new MockCustomerRepository
func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{}
}

// AddCustomer adds a customer with pre-loaded invoices (helper for tests)
func (m *MockCustomerRepository) AddCustomer(c *domain.CustomerWithInvoices) {
	m.Customers = append(m.Customers, c)
}

// Count returns the number of customers
func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	m.Calls.Add(1)
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return int64(len(m.Customers)), nil
}

// CountCreatedBetween counts customers created in [start, end)
func (m *MockCustomerRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	m.Calls.Add(1)
	if m.CountCreatedBetweenFn != nil {
		return m.CountCreatedBetweenFn(ctx, start, end)
	}
	var n int64
	for _, c := range m.Customers {
		if inWindow(c.CreatedAt, start, end) {
			n++
		}
	}
	return n, nil
}

// ListWithInvoices returns all customers with their invoices
func (m *MockCustomerRepository) ListWithInvoices(ctx context.Context) ([]*domain.CustomerWithInvoices, error) {
	m.Calls.Add(1)
	if m.ListWithInvoicesFn != nil {
		return m.ListWithInvoicesFn(ctx)
	}
	return m.Customers, nil
}

// MockVendorRepository is an in-memory implementation of
// domain.VendorRepository.
type MockVendorRepository struct {
	Vendors []*domain.VendorWithPurchases
	Calls   atomic.Int64

	CountFn             func(ctx context.Context) (int64, error)
	ListWithPurchasesFn func(ctx context.Context) ([]*domain.VendorWithPurchases, error)
}

// NewMockVendorRepository creates a new MockVendorRepository
func NewMockVendorRepository() *MockVendorRepository {
	return &MockVendorRepository{}
}

// AddVendor adds a vendor with pre-loaded purchases (helper for tests)
func (m *MockVendorRepository) AddVendor(v *domain.VendorWithPurchases) {
	m.Vendors = append(m.Vendors, v)
}

// Count returns the number of vendors
func (m *MockVendorRepository) Count(ctx context.Context) (int64, error) {
	m.Calls.Add(1)
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return int64(len(m.Vendors)), nil
}

// ListWithPurchases returns all vendors with their purchases
func (m *MockVendorRepository) ListWithPurchases(ctx context.Context) ([]*domain.VendorWithPurchases, error) {
	m.Calls.Add(1)
	if m.ListWithPurchasesFn != nil {
		return m.ListWithPurchasesFn(ctx)
	}
	return m.Vendors, nil
}

// MockProjectRepository is an in-memory implementation of
// domain.ProjectRepository.
type MockProjectRepository struct {
	Projects []*domain.Project
	Calls    atomic.Int64

	CountFn                func(ctx context.Context) (int64, error)
	CountByStatusFn        func(ctx context.Context, status domain.ProjectStatus) (int64, error)
	CountGroupedByStatusFn func(ctx context.Context) ([]*domain.StatusCount, error)
}

// NewMockProjectRepository creates a new MockProjectRepository
func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{}
}

// AddProject adds a project (helper for tests)
func (m *MockProjectRepository) AddProject(p *domain.Project) {
	m.Projects = append(m.Projects, p)
}

// Count returns the number of projects
func (m *MockProjectRepository) Count(ctx context.Context) (int64, error) {
	m.Calls.Add(1)
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return int64(len(m.Projects)), nil
}

// CountByStatus counts projects in the given status
func (m *MockProjectRepository) CountByStatus(ctx context.Context, status domain.ProjectStatus) (int64, error) {
	m.Calls.Add(1)
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	var n int64
	for _, p := range m.Projects {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

// CountGroupedByStatus returns per-status project counts, status name
// ascending like the real GROUP BY ... ORDER BY query
func (m *MockProjectRepository) CountGroupedByStatus(ctx context.Context) ([]*domain.StatusCount, error) {
	m.Calls.Add(1)
	if m.CountGroupedByStatusFn != nil {
		return m.CountGroupedByStatusFn(ctx)
	}
	byStatus := make(map[string]int64)
	for _, p := range m.Projects {
		byStatus[string(p.Status)]++
	}
	names := make([]string, 0, len(byStatus))
	for name := range byStatus {
		names = append(names, name)
	}
	sort.Strings(names)
	counts := make([]*domain.StatusCount, 0, len(names))
	for _, name := range names {
		counts = append(counts, &domain.StatusCount{Name: name, Value: byStatus[name]})
	}
	return counts, nil
}

// MockInvoiceRepository is an in-memory implementation of
// domain.InvoiceRepository. Quotations are excluded from status counts
// and sums, cancelled invoices from sums, mirroring the SQL.
type MockInvoiceRepository struct {
	Invoices []*domain.Invoice
	Calls    atomic.Int64

	CountByKindFn        func(ctx context.Context, kind domain.InvoiceKind) (int64, error)
	CountByStatusFn      func(ctx context.Context, status domain.InvoiceStatus) (int64, error)
	CountOverdueFn       func(ctx context.Context, asOf time.Time) (int64, error)
	CountIssuedBetweenFn func(ctx context.Context, start, end time.Time) (int64, error)
	SumTotalBetweenFn    func(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

// NewMockInvoiceRepository creates a new MockInvoiceRepository
func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{}
}

// AddInvoice adds an invoice (helper for tests)
func (m *MockInvoiceRepository) AddInvoice(inv *domain.Invoice) {
	m.Invoices = append(m.Invoices, inv)
}

// CountByKind counts records of the given kind
func (m *MockInvoiceRepository) CountByKind(ctx context.Context, kind domain.InvoiceKind) (int64, error) {
	m.Calls.Add(1)
	if m.CountByKindFn != nil {
		return m.CountByKindFn(ctx, kind)
	}
	var n int64
	for _, inv := range m.Invoices {
		if inv.Kind == kind {
			n++
		}
	}
	return n, nil
}

// CountByStatus counts invoices in the given status
func (m *MockInvoiceRepository) CountByStatus(ctx context.Context, status domain.InvoiceStatus) (int64, error) {
	m.Calls.Add(1)
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	var n int64
	for _, inv := range m.Invoices {
		if inv.Kind == domain.KindInvoice && inv.Status == status {
			n++
		}
	}
	return n, nil
}

// CountOverdue counts open invoices due before asOf
func (m *MockInvoiceRepository) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	m.Calls.Add(1)
	if m.CountOverdueFn != nil {
		return m.CountOverdueFn(ctx, asOf)
	}
	var n int64
	for _, inv := range m.Invoices {
		if inv.Kind != domain.KindInvoice || !inv.DueDate.Before(asOf) {
			continue
		}
		for _, open := range domain.OpenInvoiceStatuses {
			if inv.Status == open {
				n++
				break
			}
		}
	}
	return n, nil
}

// CountIssuedBetween counts invoices issued in [start, end)
func (m *MockInvoiceRepository) CountIssuedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	m.Calls.Add(1)
	if m.CountIssuedBetweenFn != nil {
		return m.CountIssuedBetweenFn(ctx, start, end)
	}
	var n int64
	for _, inv := range m.Invoices {
		if inv.Kind == domain.KindInvoice && inWindow(inv.IssueDate, start, end) {
			n++
		}
	}
	return n, nil
}

// SumTotalBetween sums non-cancelled invoice totals issued in [start, end)
func (m *MockInvoiceRepository) SumTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	m.Calls.Add(1)
	if m.SumTotalBetweenFn != nil {
		return m.SumTotalBetweenFn(ctx, start, end)
	}
	total := decimal.Zero
	for _, inv := range m.Invoices {
		if inv.Kind != domain.KindInvoice || inv.Status == domain.InvoiceStatusCancelled {
			continue
		}
		if inWindow(inv.IssueDate, start, end) {
			total = total.Add(inv.Total)
		}
	}
	return total, nil
}

// MockPurchaseRepository is an in-memory implementation of
// domain.PurchaseRepository.
type MockPurchaseRepository struct {
	Purchases []*domain.Purchase
	Calls     atomic.Int64

	SumTotalFn        func(ctx context.Context) (decimal.Decimal, error)
	SumTotalBetweenFn func(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}

// NewMockPurchaseRepository creates a new MockPurchaseRepository
func NewMockPurchaseRepository() *MockPurchaseRepository {
	return &MockPurchaseRepository{}
}

// AddPurchase adds a purchase (helper for tests)
func (m *MockPurchaseRepository) AddPurchase(p *domain.Purchase) {
	m.Purchases = append(m.Purchases, p)
}

// SumTotal sums all non-cancelled purchase totals
func (m *MockPurchaseRepository) SumTotal(ctx context.Context) (decimal.Decimal, error) {
	m.Calls.Add(1)
	if m.SumTotalFn != nil {
		return m.SumTotalFn(ctx)
	}
	total := decimal.Zero
	for _, p := range m.Purchases {
		if p.Status == domain.PurchaseStatusCancelled {
			continue
		}
		total = total.Add(p.Total)
	}
	return total, nil
}

// SumTotalBetween sums non-cancelled purchase totals ordered in [start, end)
func (m *MockPurchaseRepository) SumTotalBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	m.Calls.Add(1)
	if m.SumTotalBetweenFn != nil {
		return m.SumTotalBetweenFn(ctx, start, end)
	}
	total := decimal.Zero
	for _, p := range m.Purchases {
		if p.Status == domain.PurchaseStatusCancelled {
			continue
		}
		if inWindow(p.OrderDate, start, end) {
			total = total.Add(p.Total)
		}
	}
	return total, nil
}

// MockTaskRepository is an in-memory implementation of
// domain.TaskRepository.
type MockTaskRepository struct {
	Tasks []*domain.Task
	Calls atomic.Int64

	CountByStatusFn func(ctx context.Context, status domain.TaskStatus) (int64, error)
}

// NewMockTaskRepository creates a new MockTaskRepository
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

// AddTask adds a task (helper for tests)
func (m *MockTaskRepository) AddTask(task *domain.Task) {
	m.Tasks = append(m.Tasks, task)
}

// CountByStatus counts tasks in the given status
func (m *MockTaskRepository) CountByStatus(ctx context.Context, status domain.TaskStatus) (int64, error) {
	m.Calls.Add(1)
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	var n int64
	for _, task := range m.Tasks {
		if task.Status == status {
			n++
		}
	}
	return n, nil
}

// MockEmployeeRepository is an in-memory implementation of
// domain.EmployeeRepository.
type MockEmployeeRepository struct {
	Employees []*domain.Employee
	Calls     atomic.Int64

	CountFn func(ctx context.Context) (int64, error)
}

// NewMockEmployeeRepository creates a new MockEmployeeRepository
func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{}
}

// AddEmployee adds an employee (helper for tests)
func (m *MockEmployeeRepository) AddEmployee(e *domain.Employee) {
	m.Employees = append(m.Employees, e)
}

// Count returns the number of employees
func (m *MockEmployeeRepository) Count(ctx context.Context) (int64, error) {
	m.Calls.Add(1)
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return int64(len(m.Employees)), nil
}

// MockActivityRepository is an in-memory implementation of
// domain.ActivityRepository.
type MockActivityRepository struct {
	Activities []*domain.Activity
	Calls      atomic.Int64

	ListRecentFn func(ctx context.Context, limit int) ([]*domain.Activity, error)
}

// NewMockActivityRepository creates a new MockActivityRepository
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

// AddActivity adds an activity entry (helper for tests)
func (m *MockActivityRepository) AddActivity(a *domain.Activity) {
	m.Activities = append(m.Activities, a)
}

// ListRecent returns up to limit entries, newest first
func (m *MockActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error) {
	m.Calls.Add(1)
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	entries := make([]*domain.Activity, len(m.Activities))
	copy(entries, m.Activities)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
