package service

import (
	"context"
	"time"

	"github.com/portside-erp/portside-backend/internal/domain"
	"github.com/portside-erp/portside-backend/internal/util"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// monthlySumFunc fetches one monetary aggregate over a half-open window.
type monthlySumFunc func(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

// buildMonthlySeries produces a trailing series of month buckets ending
// at the month containing now, oldest first. The windows are
// disjoint, so each bucket is fetched concurrently and written to its own
// slot; a month with no records contributes a zero amount, never an error.
func buildMonthlySeries(ctx context.Context, now time.Time, months int, fetch monthlySumFunc) ([]domain.SeriesPoint, error) {
	points := make([]domain.SeriesPoint, months)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < months; i++ {
		slot := i
		window := util.TrailingMonth(now, months-1-i)
		g.Go(func() error {
			sum, err := fetch(gctx, window.Start, window.End)
			if err != nil {
				return err
			}
			points[slot] = domain.SeriesPoint{Label: window.Label(), Amount: sum}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
