package domain

import "github.com/shopspring/decimal"

// SeriesPoint is one month bucket of a trailing time series.
type SeriesPoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// RankedEntity is one row of a top-N ranking by monetary value.
type RankedEntity struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DashboardStats is the composite report computed per request. It is
// read, serialized and discarded; nothing persists it.
type DashboardStats struct {
	TotalCustomers  int64 `json:"totalCustomers"`
	TotalVendors    int64 `json:"totalVendors"`
	TotalProjects   int64 `json:"totalProjects"`
	TotalEmployees  int64 `json:"totalEmployees"`
	TotalInvoices   int64 `json:"totalInvoices"`
	TotalQuotations int64 `json:"totalQuotations"`

	ActiveProjects        int64 `json:"activeProjects"`
	CompletedProjects     int64 `json:"completedProjects"`
	ProjectCompletionRate int   `json:"projectCompletionRate"`

	RevenueThisMonth decimal.Decimal `json:"revenueThisMonth"`
	RevenueLastMonth decimal.Decimal `json:"revenueLastMonth"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	RevenueGrowth    int             `json:"revenueGrowth"`

	PendingInvoices int64 `json:"pendingInvoices"`
	OverdueInvoices int64 `json:"overdueInvoices"`
	InvoiceGrowth   int   `json:"invoiceGrowth"`

	PendingTasks   int64 `json:"pendingTasks"`
	CompletedTasks int64 `json:"completedTasks"`

	NewCustomers   int64 `json:"newCustomers"`
	CustomerGrowth int   `json:"customerGrowth"`

	TotalPurchases decimal.Decimal `json:"totalPurchases"`

	// Expense tracking is not built yet; these stay at zero so the
	// payload shape is stable for the frontend.
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	ExpenseGrowth int             `json:"expenseGrowth"`

	SalesData         []SeriesPoint  `json:"salesData"`
	PurchasesData     []SeriesPoint  `json:"purchasesData"`
	ProjectStatusData []*StatusCount `json:"projectStatusData"`

	TopCustomers []RankedEntity `json:"topCustomers"`
	TopVendors   []RankedEntity `json:"topVendors"`

	RecentActivities []*Activity `json:"recentActivities"`
}
