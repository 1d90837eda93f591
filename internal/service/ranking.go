package service

import (
	"sort"

	"github.com/portside-erp/portside-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// topEntityLimit caps both top-customer and top-vendor rankings.
const topEntityLimit = 5

// rankTopEntities drops entities with a non-positive value, sorts the rest
// by value descending and returns at most limit of them. Ties keep no
// particular relative order.
func rankTopEntities(entities []domain.RankedEntity, limit int) []domain.RankedEntity {
	ranked := make([]domain.RankedEntity, 0, len(entities))
	for _, e := range entities {
		if e.Value.LessThanOrEqual(decimal.Zero) {
			continue
		}
		ranked = append(ranked, e)
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// topCustomersByRevenue totals each customer's invoices (quotations and
// cancelled invoices excluded) and ranks the result.
func topCustomersByRevenue(customers []*domain.CustomerWithInvoices, limit int) []domain.RankedEntity {
	entities := make([]domain.RankedEntity, 0, len(customers))
	for _, c := range customers {
		total := decimal.Zero
		for _, inv := range c.Invoices {
			if inv.Kind != domain.KindInvoice || inv.Status == domain.InvoiceStatusCancelled {
				continue
			}
			total = total.Add(inv.Total)
		}
		entities = append(entities, domain.RankedEntity{Name: c.DisplayName(), Value: total})
	}
	return rankTopEntities(entities, limit)
}

// topVendorsBySpend totals each vendor's non-cancelled purchases and ranks
// the result.
func topVendorsBySpend(vendors []*domain.VendorWithPurchases, limit int) []domain.RankedEntity {
	entities := make([]domain.RankedEntity, 0, len(vendors))
	for _, v := range vendors {
		total := decimal.Zero
		for _, p := range v.Purchases {
			if p.Status == domain.PurchaseStatusCancelled {
				continue
			}
			total = total.Add(p.Total)
		}
		entities = append(entities, domain.RankedEntity{Name: v.DisplayName(), Value: total})
	}
	return rankTopEntities(entities, limit)
}
