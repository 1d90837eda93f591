package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/portside-erp/portside-backend/internal/domain"
	"github.com/portside-erp/portside-backend/internal/middleware"
	"github.com/portside-erp/portside-backend/internal/service"
	"github.com/rs/zerolog/log"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// SeriesPointResponse represents one month bucket in a time series
type SeriesPointResponse struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// RankedEntityResponse represents one row of a top-N ranking
type RankedEntityResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StatusCountResponse represents one status bucket
type StatusCountResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// ActivityResponse represents one audit feed entry
type ActivityResponse struct {
	ID        string    `json:"id"`
	ActorName string    `json:"actorName"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	CreatedAt time.Time `json:"createdAt"`
}

// DashboardStatsResponse represents the dashboard stats API response.
// Monetary amounts are fixed two-decimal strings.
type DashboardStatsResponse struct {
	TotalCustomers  int64 `json:"totalCustomers"`
	TotalVendors    int64 `json:"totalVendors"`
	TotalProjects   int64 `json:"totalProjects"`
	TotalEmployees  int64 `json:"totalEmployees"`
	TotalInvoices   int64 `json:"totalInvoices"`
	TotalQuotations int64 `json:"totalQuotations"`

	ActiveProjects        int64 `json:"activeProjects"`
	CompletedProjects     int64 `json:"completedProjects"`
	ProjectCompletionRate int   `json:"projectCompletionRate"`

	RevenueThisMonth string `json:"revenueThisMonth"`
	RevenueLastMonth string `json:"revenueLastMonth"`
	TotalRevenue     string `json:"totalRevenue"`
	RevenueGrowth    int    `json:"revenueGrowth"`

	PendingInvoices int64 `json:"pendingInvoices"`
	OverdueInvoices int64 `json:"overdueInvoices"`
	InvoiceGrowth   int   `json:"invoiceGrowth"`

	PendingTasks   int64 `json:"pendingTasks"`
	CompletedTasks int64 `json:"completedTasks"`

	NewCustomers   int64 `json:"newCustomers"`
	CustomerGrowth int   `json:"customerGrowth"`

	TotalPurchases string `json:"totalPurchases"`
	TotalExpenses  string `json:"totalExpenses"`
	ExpenseGrowth  int    `json:"expenseGrowth"`

	SalesData         []SeriesPointResponse  `json:"salesData"`
	PurchasesData     []SeriesPointResponse  `json:"purchasesData"`
	ProjectStatusData []StatusCountResponse  `json:"projectStatusData"`
	TopCustomers      []RankedEntityResponse `json:"topCustomers"`
	TopVendors        []RankedEntityResponse `json:"topVendors"`
	RecentActivities  []ActivityResponse     `json:"recentActivities"`
}

// GetStats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c echo.Context) error {
	subject := middleware.GetSubject(c)
	if subject == "" {
		return NewUnauthorizedError(c, "Authentication required")
	}

	stats, err := h.dashboardService.GetStats(c.Request().Context(), time.Now())
	if err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("Failed to get dashboard stats")
		return NewInternalError(c, "Failed to get dashboard stats")
	}

	return c.JSON(http.StatusOK, toDashboardStatsResponse(stats))
}

func toDashboardStatsResponse(stats *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalCustomers:  stats.TotalCustomers,
		TotalVendors:    stats.TotalVendors,
		TotalProjects:   stats.TotalProjects,
		TotalEmployees:  stats.TotalEmployees,
		TotalInvoices:   stats.TotalInvoices,
		TotalQuotations: stats.TotalQuotations,

		ActiveProjects:        stats.ActiveProjects,
		CompletedProjects:     stats.CompletedProjects,
		ProjectCompletionRate: stats.ProjectCompletionRate,

		RevenueThisMonth: stats.RevenueThisMonth.StringFixed(2),
		RevenueLastMonth: stats.RevenueLastMonth.StringFixed(2),
		TotalRevenue:     stats.TotalRevenue.StringFixed(2),
		RevenueGrowth:    stats.RevenueGrowth,

		PendingInvoices: stats.PendingInvoices,
		OverdueInvoices: stats.OverdueInvoices,
		InvoiceGrowth:   stats.InvoiceGrowth,

		PendingTasks:   stats.PendingTasks,
		CompletedTasks: stats.CompletedTasks,

		NewCustomers:   stats.NewCustomers,
		CustomerGrowth: stats.CustomerGrowth,

		TotalPurchases: stats.TotalPurchases.StringFixed(2),
		TotalExpenses:  stats.TotalExpenses.StringFixed(2),
		ExpenseGrowth:  stats.ExpenseGrowth,

		SalesData:         toSeriesResponse(stats.SalesData),
		PurchasesData:     toSeriesResponse(stats.PurchasesData),
		ProjectStatusData: toStatusCountResponse(stats.ProjectStatusData),
		TopCustomers:      toRankedResponse(stats.TopCustomers),
		TopVendors:        toRankedResponse(stats.TopVendors),
		RecentActivities:  toActivityResponse(stats.RecentActivities),
	}
}

func toSeriesResponse(points []domain.SeriesPoint) []SeriesPointResponse {
	out := make([]SeriesPointResponse, len(points))
	for i, p := range points {
		out[i] = SeriesPointResponse{Label: p.Label, Amount: p.Amount.StringFixed(2)}
	}
	return out
}

func toRankedResponse(entities []domain.RankedEntity) []RankedEntityResponse {
	out := make([]RankedEntityResponse, len(entities))
	for i, e := range entities {
		out[i] = RankedEntityResponse{Name: e.Name, Value: e.Value.StringFixed(2)}
	}
	return out
}

func toStatusCountResponse(counts []*domain.StatusCount) []StatusCountResponse {
	out := make([]StatusCountResponse, len(counts))
	for i, sc := range counts {
		out[i] = StatusCountResponse{Name: sc.Name, Value: sc.Value}
	}
	return out
}

func toActivityResponse(activities []*domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		out[i] = ActivityResponse{
			ID:        a.ID.String(),
			ActorName: a.ActorName,
			Action:    a.Action,
			Entity:    a.Entity,
			CreatedAt: a.CreatedAt,
		}
	}
	return out
}
