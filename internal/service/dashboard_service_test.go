package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portside-erp/portside-backend/internal/domain"
	"github.com/portside-erp/portside-backend/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardMocks struct {
	customers  *testutil.MockCustomerRepository
	vendors    *testutil.MockVendorRepository
	projects   *testutil.MockProjectRepository
	invoices   *testutil.MockInvoiceRepository
	purchases  *testutil.MockPurchaseRepository
	tasks      *testutil.MockTaskRepository
	employees  *testutil.MockEmployeeRepository
	activities *testutil.MockActivityRepository
}

func newDashboardService() (*DashboardService, *dashboardMocks) {
	m := &dashboardMocks{
		customers:  testutil.NewMockCustomerRepository(),
		vendors:    testutil.NewMockVendorRepository(),
		projects:   testutil.NewMockProjectRepository(),
		invoices:   testutil.NewMockInvoiceRepository(),
		purchases:  testutil.NewMockPurchaseRepository(),
		tasks:      testutil.NewMockTaskRepository(),
		employees:  testutil.NewMockEmployeeRepository(),
		activities: testutil.NewMockActivityRepository(),
	}
	svc := NewDashboardService(
		m.customers, m.vendors, m.projects, m.invoices,
		m.purchases, m.tasks, m.employees, m.activities,
	)
	return svc, m
}

func paidInvoice(customerID int32, total string, issued time.Time) *domain.Invoice {
	return &domain.Invoice{
		CustomerID: customerID,
		Kind:       domain.KindInvoice,
		Status:     domain.InvoiceStatusPaid,
		Total:      decimal.RequireFromString(total),
		IssueDate:  issued,
		DueDate:    issued.AddDate(0, 0, 30),
	}
}

func TestGetStatsEmptyDatabase(t *testing.T) {
	svc, _ := newDashboardService()
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	stats, err := svc.GetStats(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalCustomers)
	assert.Equal(t, int64(0), stats.TotalInvoices)
	assert.True(t, stats.RevenueThisMonth.IsZero())
	assert.True(t, stats.RevenueLastMonth.IsZero())
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.Equal(t, 100, stats.RevenueGrowth)
	assert.Equal(t, 100, stats.InvoiceGrowth)
	assert.Equal(t, 100, stats.CustomerGrowth)
	assert.Equal(t, 0, stats.ProjectCompletionRate)

	assert.Len(t, stats.SalesData, 6)
	assert.Len(t, stats.PurchasesData, 6)
	for _, p := range stats.SalesData {
		assert.True(t, p.Amount.IsZero())
	}
	assert.Empty(t, stats.TopCustomers)
	assert.Empty(t, stats.TopVendors)
	assert.Empty(t, stats.RecentActivities)
}

func TestGetStatsRevenueGrowth(t *testing.T) {
	svc, m := newDashboardService()
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	m.invoices.AddInvoice(paidInvoice(1, "1000", time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)))
	m.invoices.AddInvoice(paidInvoice(1, "900", time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)))
	m.invoices.AddInvoice(paidInvoice(2, "600", time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)))

	stats, err := svc.GetStats(context.Background(), now)
	require.NoError(t, err)

	assert.True(t, stats.RevenueThisMonth.Equal(decimal.RequireFromString("1500")),
		"RevenueThisMonth = %s", stats.RevenueThisMonth)
	assert.True(t, stats.RevenueLastMonth.Equal(decimal.RequireFromString("1000")),
		"RevenueLastMonth = %s", stats.RevenueLastMonth)
	assert.Equal(t, 50, stats.RevenueGrowth)
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("2500")),
		"TotalRevenue = %s", stats.TotalRevenue)
}

func TestGetStatsCounts(t *testing.T) {
	svc, m := newDashboardService()
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	m.projects.AddProject(&domain.Project{Status: domain.ProjectStatusActive})
	m.projects.AddProject(&domain.Project{Status: domain.ProjectStatusActive})
	m.projects.AddProject(&domain.Project{Status: domain.ProjectStatusCompleted})
	m.projects.AddProject(&domain.Project{Status: domain.ProjectStatusPlanning})

	m.tasks.AddTask(&domain.Task{Status: domain.TaskStatusPending})
	m.tasks.AddTask(&domain.Task{Status: domain.TaskStatusCompleted})
	m.tasks.AddTask(&domain.Task{Status: domain.TaskStatusCompleted})

	m.employees.AddEmployee(&domain.Employee{ID: 1})

	quotation := paidInvoice(1, "100", now)
	quotation.Kind = domain.KindQuotation
	m.invoices.AddInvoice(quotation)
	m.invoices.AddInvoice(paidInvoice(1, "200", now))

	stats, err := svc.GetStats(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalProjects)
	assert.Equal(t, int64(2), stats.ActiveProjects)
	assert.Equal(t, int64(1), stats.CompletedProjects)
	assert.Equal(t, 33, stats.ProjectCompletionRate)
	assert.Equal(t, int64(1), stats.PendingTasks)
	assert.Equal(t, int64(2), stats.CompletedTasks)
	assert.Equal(t, int64(1), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.TotalInvoices)
	assert.Equal(t, int64(1), stats.TotalQuotations)

	require.Len(t, stats.ProjectStatusData, 3)
	byName := make(map[string]int64)
	for _, sc := range stats.ProjectStatusData {
		byName[sc.Name] = sc.Value
	}
	assert.Equal(t, int64(2), byName["active"])
	assert.Equal(t, int64(1), byName["completed"])
	assert.Equal(t, int64(1), byName["planning"])
}

func TestGetStatsTopCustomers(t *testing.T) {
	svc, m := newDashboardService()
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	companies := []struct {
		name  string
		total string
	}{
		{"Harbor Freight Co", "500"},
		{"Quiet Cove Ltd", "0"},
		{"Blue Anchor BV", "1200"},
	}
	for i, c := range companies {
		name := c.name
		cwi := &domain.CustomerWithInvoices{}
		cwi.ID = int32(i + 1)
		cwi.CompanyName = &name
		if c.total != "0" {
			cwi.Invoices = []*domain.Invoice{paidInvoice(cwi.ID, c.total, now)}
		}
		m.customers.AddCustomer(cwi)
	}

	stats, err := svc.GetStats(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, stats.TopCustomers, 2)
	assert.Equal(t, "Blue Anchor BV", stats.TopCustomers[0].Name)
	assert.Equal(t, "Harbor Freight Co", stats.TopCustomers[1].Name)
}

func TestGetStatsOverdueInvoices(t *testing.T) {
	svc, m := newDashboardService()
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	overdue := paidInvoice(1, "300", now.AddDate(0, -2, 0))
	overdue.Status = domain.InvoiceStatusPending
	overdue.DueDate = now.AddDate(0, 0, -5)
	m.invoices.AddInvoice(overdue)

	paidLate := paidInvoice(1, "300", now.AddDate(0, -2, 0))
	paidLate.DueDate = now.AddDate(0, 0, -5)
	m.invoices.AddInvoice(paidLate)

	notYetDue := paidInvoice(1, "300", now)
	notYetDue.Status = domain.InvoiceStatusPending
	m.invoices.AddInvoice(notYetDue)

	stats, err := svc.GetStats(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.OverdueInvoices)
	assert.Equal(t, int64(2), stats.PendingInvoices)
}

func TestGetStatsRecentActivities(t *testing.T) {
	svc, m := newDashboardService()
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		m.activities.AddActivity(&domain.Activity{
			ActorName: "Ana Silva",
			Action:    "created",
			Entity:    "invoice",
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	stats, err := svc.GetStats(context.Background(), now)
	require.NoError(t, err)

	require.Len(t, stats.RecentActivities, 5)
	for i := 1; i < len(stats.RecentActivities); i++ {
		assert.True(t, stats.RecentActivities[i].CreatedAt.Before(stats.RecentActivities[i-1].CreatedAt),
			"activities not newest first at index %d", i)
	}
}

func TestGetStatsFailsWhenAnyQueryFails(t *testing.T) {
	svc, m := newDashboardService()
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	wantErr := errors.New("connection refused")
	m.tasks.CountByStatusFn = func(ctx context.Context, status domain.TaskStatus) (int64, error) {
		return 0, wantErr
	}

	stats, err := svc.GetStats(context.Background(), now)
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, stats)
}

func TestGetStatsDeadlineExceeded(t *testing.T) {
	svc, m := newDashboardService()
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	// one aggregation never completes; the request deadline must fail
	// the whole batch, not yield a partial report
	m.employees.CountFn = func(ctx context.Context) (int64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	stats, err := svc.GetStats(ctx, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, stats)
}
