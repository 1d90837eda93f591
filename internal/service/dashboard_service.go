package service

import (
	"context"
	"fmt"
	"time"

	"github.com/portside-erp/portside-backend/internal/domain"
	"github.com/portside-erp/portside-backend/internal/util"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	// statsTimeout bounds the whole aggregation batch. If any query is
	// still running past this, the request fails as a whole.
	statsTimeout = 10 * time.Second

	trailingMonths      = 6
	recentActivityLimit = 5
)

// DashboardService computes the composite dashboard report. Every request
// fans out the full set of independent read aggregations against the
// repositories and joins them before assembly; no result is cached.
type DashboardService struct {
	customers  domain.CustomerRepository
	vendors    domain.VendorRepository
	projects   domain.ProjectRepository
	invoices   domain.InvoiceRepository
	purchases  domain.PurchaseRepository
	tasks      domain.TaskRepository
	employees  domain.EmployeeRepository
	activities domain.ActivityRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	customers domain.CustomerRepository,
	vendors domain.VendorRepository,
	projects domain.ProjectRepository,
	invoices domain.InvoiceRepository,
	purchases domain.PurchaseRepository,
	tasks domain.TaskRepository,
	employees domain.EmployeeRepository,
	activities domain.ActivityRepository,
) *DashboardService {
	return &DashboardService{
		customers:  customers,
		vendors:    vendors,
		projects:   projects,
		invoices:   invoices,
		purchases:  purchases,
		tasks:      tasks,
		employees:  employees,
		activities: activities,
	}
}

// GetStats computes the dashboard report relative to now. The aggregations
// are mutually independent, so each runs in its own goroutine writing to
// its own slot; the first error cancels the rest and fails the request.
func (s *DashboardService) GetStats(ctx context.Context, now time.Time) (*domain.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()

	thisMonth := util.CurrentMonth(now)
	lastMonth := util.PreviousMonth(now)
	yearToDate := util.YearToDate(now)

	var (
		totalCustomers, totalVendors, totalProjects    int64
		totalEmployees, totalInvoices, totalQuotations int64
		activeProjects, completedProjects              int64
		pendingInvoices, overdueInvoices               int64
		pendingTasks, completedTasks                   int64
		newCustomers, prevNewCustomers                 int64
		invoicesThisMonth, invoicesLastMonth           int64

		revenueThisMonth, revenueLastMonth decimal.Decimal
		totalRevenue, totalPurchases       decimal.Decimal

		projectStatusData []*domain.StatusCount
		salesData         []domain.SeriesPoint
		purchasesData     []domain.SeriesPoint
		topCustomers      []domain.RankedEntity
		topVendors        []domain.RankedEntity
		recentActivities  []*domain.Activity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		totalCustomers, err = s.customers.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		totalVendors, err = s.vendors.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		totalProjects, err = s.projects.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		totalEmployees, err = s.employees.Count(gctx)
		return
	})
	g.Go(func() (err error) {
		totalInvoices, err = s.invoices.CountByKind(gctx, domain.KindInvoice)
		return
	})
	g.Go(func() (err error) {
		totalQuotations, err = s.invoices.CountByKind(gctx, domain.KindQuotation)
		return
	})
	g.Go(func() (err error) {
		activeProjects, err = s.projects.CountByStatus(gctx, domain.ProjectStatusActive)
		return
	})
	g.Go(func() (err error) {
		completedProjects, err = s.projects.CountByStatus(gctx, domain.ProjectStatusCompleted)
		return
	})
	g.Go(func() (err error) {
		projectStatusData, err = s.projects.CountGroupedByStatus(gctx)
		return
	})
	g.Go(func() (err error) {
		revenueThisMonth, err = s.invoices.SumTotalBetween(gctx, thisMonth.Start, thisMonth.End)
		return
	})
	g.Go(func() (err error) {
		revenueLastMonth, err = s.invoices.SumTotalBetween(gctx, lastMonth.Start, lastMonth.End)
		return
	})
	g.Go(func() (err error) {
		totalRevenue, err = s.invoices.SumTotalBetween(gctx, yearToDate.Start, yearToDate.End)
		return
	})
	g.Go(func() (err error) {
		pendingInvoices, err = s.invoices.CountByStatus(gctx, domain.InvoiceStatusPending)
		return
	})
	g.Go(func() (err error) {
		overdueInvoices, err = s.invoices.CountOverdue(gctx, now)
		return
	})
	g.Go(func() (err error) {
		invoicesThisMonth, err = s.invoices.CountIssuedBetween(gctx, thisMonth.Start, thisMonth.End)
		return
	})
	g.Go(func() (err error) {
		invoicesLastMonth, err = s.invoices.CountIssuedBetween(gctx, lastMonth.Start, lastMonth.End)
		return
	})
	g.Go(func() (err error) {
		newCustomers, err = s.customers.CountCreatedBetween(gctx, thisMonth.Start, thisMonth.End)
		return
	})
	g.Go(func() (err error) {
		prevNewCustomers, err = s.customers.CountCreatedBetween(gctx, lastMonth.Start, lastMonth.End)
		return
	})
	g.Go(func() (err error) {
		totalPurchases, err = s.purchases.SumTotal(gctx)
		return
	})
	g.Go(func() (err error) {
		pendingTasks, err = s.tasks.CountByStatus(gctx, domain.TaskStatusPending)
		return
	})
	g.Go(func() (err error) {
		completedTasks, err = s.tasks.CountByStatus(gctx, domain.TaskStatusCompleted)
		return
	})

	g.Go(func() (err error) {
		salesData, err = buildMonthlySeries(gctx, now, trailingMonths, s.invoices.SumTotalBetween)
		return
	})
	g.Go(func() (err error) {
		purchasesData, err = buildMonthlySeries(gctx, now, trailingMonths, s.purchases.SumTotalBetween)
		return
	})

	g.Go(func() error {
		customers, err := s.customers.ListWithInvoices(gctx)
		if err != nil {
			return err
		}
		topCustomers = topCustomersByRevenue(customers, topEntityLimit)
		return nil
	})
	g.Go(func() error {
		vendors, err := s.vendors.ListWithPurchases(gctx)
		if err != nil {
			return err
		}
		topVendors = topVendorsBySpend(vendors, topEntityLimit)
		return nil
	})
	g.Go(func() (err error) {
		recentActivities, err = s.activities.ListRecent(gctx, recentActivityLimit)
		return
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard aggregation: %w", err)
	}

	return &domain.DashboardStats{
		TotalCustomers:  totalCustomers,
		TotalVendors:    totalVendors,
		TotalProjects:   totalProjects,
		TotalEmployees:  totalEmployees,
		TotalInvoices:   totalInvoices,
		TotalQuotations: totalQuotations,

		ActiveProjects:        activeProjects,
		CompletedProjects:     completedProjects,
		ProjectCompletionRate: completionRate(activeProjects, completedProjects),

		RevenueThisMonth: revenueThisMonth,
		RevenueLastMonth: revenueLastMonth,
		TotalRevenue:     totalRevenue,
		RevenueGrowth:    growthPercent(revenueThisMonth, revenueLastMonth),

		PendingInvoices: pendingInvoices,
		OverdueInvoices: overdueInvoices,
		InvoiceGrowth:   growthPercentCount(invoicesThisMonth, invoicesLastMonth),

		PendingTasks:   pendingTasks,
		CompletedTasks: completedTasks,

		NewCustomers:   newCustomers,
		CustomerGrowth: growthPercentCount(newCustomers, prevNewCustomers),

		TotalPurchases: totalPurchases,

		TotalExpenses: decimal.Zero,
		ExpenseGrowth: 0,

		SalesData:         salesData,
		PurchasesData:     purchasesData,
		ProjectStatusData: projectStatusData,

		TopCustomers: topCustomers,
		TopVendors:   topVendors,

		RecentActivities: recentActivities,
	}, nil
}
