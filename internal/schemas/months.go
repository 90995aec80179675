package schemas

import "github.com/zapponejosh/daycount/internal/mathz"

// Month-count calculators for regular schemas: every year has the same
// number of months, so the linear month count is a plain base conversion.

// countMonthsSinceEpoch returns the number of months from the first month
// of year 1 to month m of year y.
func countMonthsSinceEpoch(y, m, monthsInYear int32) int32 {
	return monthsInYear*(y-1) + m - 1
}

// getMonthParts is the inverse of countMonthsSinceEpoch.
func getMonthParts(monthsSinceEpoch, monthsInYear int32) (y, m int32) {
	q, r := mathz.DivMod(monthsSinceEpoch, monthsInYear)
	return q + 1, r + 1
}
