package service

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// growthPercent returns the signed percentage change from previous to
// current, rounded half away from zero. A zero previous period yields 100
// ("new growth"), matching the behavior the frontend was built against —
// including growthPercent(0, 0) == 100.
func growthPercent(current, previous decimal.Decimal) int {
	if previous.IsZero() {
		return 100
	}
	return int(current.Sub(previous).Div(previous).Mul(hundred).Round(0).IntPart())
}

// growthPercentCount is growthPercent over integer counts.
func growthPercentCount(current, previous int64) int {
	return growthPercent(decimal.NewFromInt(current), decimal.NewFromInt(previous))
}

// completionRate returns completed/(active+completed) as a rounded
// percentage, or 0 when there are no projects at all.
func completionRate(active, completed int64) int {
	total := active + completed
	if total == 0 {
		return 0
	}
	return int(decimal.NewFromInt(completed).Div(decimal.NewFromInt(total)).Mul(hundred).Round(0).IntPart())
}
