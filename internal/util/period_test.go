package util

import (
	"testing"
	"time"
)

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2026, 3, 17, 14, 30, 0, 0, time.UTC)
	p := CurrentMonth(now)

	wantStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if !p.Start.Equal(wantStart) || !p.End.Equal(wantEnd) {
		t.Errorf("CurrentMonth(%v) = [%v, %v), want [%v, %v)", now, p.Start, p.End, wantStart, wantEnd)
	}
}

func TestPreviousMonth_YearBoundary(t *testing.T) {
	now := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	p := PreviousMonth(now)

	wantStart := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !p.Start.Equal(wantStart) || !p.End.Equal(wantEnd) {
		t.Errorf("PreviousMonth(%v) = [%v, %v), want [%v, %v)", now, p.Start, p.End, wantStart, wantEnd)
	}
}

func TestTrailingMonth(t *testing.T) {
	now := time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		monthsAgo int
		wantStart time.Time
		wantLabel string
	}{
		{0, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "Mar"},
		{1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), "Feb"},
		{3, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), "Dec"},
		{5, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), "Oct"},
	}

	for _, tt := range tests {
		p := TrailingMonth(now, tt.monthsAgo)
		if !p.Start.Equal(tt.wantStart) {
			t.Errorf("TrailingMonth(now, %d).Start = %v, want %v", tt.monthsAgo, p.Start, tt.wantStart)
		}
		if !p.End.Equal(tt.wantStart.AddDate(0, 1, 0)) {
			t.Errorf("TrailingMonth(now, %d).End = %v, want %v", tt.monthsAgo, p.End, tt.wantStart.AddDate(0, 1, 0))
		}
		if p.Label() != tt.wantLabel {
			t.Errorf("TrailingMonth(now, %d).Label() = %q, want %q", tt.monthsAgo, p.Label(), tt.wantLabel)
		}
	}
}

func TestPeriodContains_HalfOpen(t *testing.T) {
	p := CurrentMonth(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC))

	if !p.Contains(p.Start) {
		t.Error("Contains(Start) should be true")
	}
	if p.Contains(p.End) {
		t.Error("Contains(End) should be false, window is half-open")
	}
	if !p.Contains(time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)) {
		t.Error("Contains(last instant of month) should be true")
	}
}

func TestYearToDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	p := YearToDate(now)

	wantStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if !p.Start.Equal(wantStart) || !p.End.Equal(wantEnd) {
		t.Errorf("YearToDate(%v) = [%v, %v), want [%v, %v)", now, p.Start, p.End, wantStart, wantEnd)
	}
}
