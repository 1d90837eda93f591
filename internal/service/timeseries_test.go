package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBuildMonthlySeries(t *testing.T) {
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	// amounts sourced from a fake ledger with records in only two of the
	// six months
	amounts := map[string]string{
		"2026-01": "1500",
		"2026-03": "420.50",
	}
	fetch := func(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
		if s, ok := amounts[start.Format("2006-01")]; ok {
			return decimal.RequireFromString(s), nil
		}
		return decimal.Zero, nil
	}

	points, err := buildMonthlySeries(context.Background(), now, 6, fetch)
	if err != nil {
		t.Fatalf("buildMonthlySeries returned error: %v", err)
	}

	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}
	wantLabels := []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i, want := range wantLabels {
		if points[i].Label != want {
			t.Errorf("points[%d].Label = %q, want %q", i, points[i].Label, want)
		}
	}
	if !points[3].Amount.Equal(decimal.RequireFromString("1500")) {
		t.Errorf("January amount = %s, want 1500", points[3].Amount)
	}
	if !points[5].Amount.Equal(decimal.RequireFromString("420.50")) {
		t.Errorf("March amount = %s, want 420.50", points[5].Amount)
	}
	for _, i := range []int{0, 1, 2, 4} {
		if !points[i].Amount.IsZero() {
			t.Errorf("points[%d].Amount = %s, want 0 for an empty month", i, points[i].Amount)
		}
	}
}

func TestBuildMonthlySeriesUsesHalfOpenWindows(t *testing.T) {
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)

	var calls atomic.Int64
	fetch := func(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
		calls.Add(1)
		if start.Day() != 1 {
			t.Errorf("window start %v is not the first of the month", start)
		}
		if !end.Equal(start.AddDate(0, 1, 0)) {
			t.Errorf("window [%v, %v) is not exactly one month", start, end)
		}
		return decimal.Zero, nil
	}

	if _, err := buildMonthlySeries(context.Background(), now, 6, fetch); err != nil {
		t.Fatalf("buildMonthlySeries returned error: %v", err)
	}
	if calls.Load() != 6 {
		t.Errorf("expected 6 fetches, got %d", calls.Load())
	}
}

func TestBuildMonthlySeriesPropagatesError(t *testing.T) {
	now := time.Date(2026, time.March, 17, 10, 0, 0, 0, time.UTC)
	wantErr := errors.New("connection reset")

	fetch := func(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
		if start.Month() == time.January {
			return decimal.Zero, wantErr
		}
		return decimal.Zero, nil
	}

	points, err := buildMonthlySeries(context.Background(), now, 6, fetch)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
	if points != nil {
		t.Errorf("expected nil points on error, got %v", points)
	}
}
