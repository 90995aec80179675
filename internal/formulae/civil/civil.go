// Package civil provides the Gregorian formulas specialized for strictly
// positive years.
//
// With year > 0 every intermediate value is non-negative, so Go's truncated
// division and remainder already round the right way and no floor
// correction is needed. The results match package gregorian for every
// positive year; for year <= 0 they are undefined. Keep this as a separate
// fast path rather than folding it into package gregorian.
package civil

import (
	"github.com/zapponejosh/daycount/internal/formulae/gregorian"
	"github.com/zapponejosh/daycount/internal/mathz"
)

// IsLeapYear reports whether y is a leap year. Requires y > 0.
func IsLeapYear[T mathz.Integer](y T) bool {
	return y&3 == 0 && (y%100 != 0 || y%400 == 0)
}

// CountDaysInMonth returns the number of days in month m of year y.
func CountDaysInMonth[T mathz.Integer](y, m T) T {
	if m == 2 {
		if IsLeapYear(y) {
			return 29
		}
		return 28
	}
	return 30 + ((m + (m >> 3)) & 1)
}

// CountDaysSinceEpoch returns the day count of y-m-d. Requires y > 0.
func CountDaysSinceEpoch[T mathz.Integer](y, m, d T) T {
	if m < 3 {
		y--
		m += 9
	} else {
		m -= 3
	}

	c := y / 100
	yoc := y % 100

	return -gregorian.DaysInYearAfterFebruary +
		(gregorian.DaysPer400YearCycle * c >> 2) +
		(gregorian.DaysPer4YearSubcycle * yoc >> 2) +
		(153*m+2)/5 + d - 1
}

// GetDateParts converts a non-negative day count to (year, month, day).
func GetDateParts[T mathz.Integer](daysSinceEpoch T) (y, m, d T) {
	daysSinceEpoch += gregorian.DaysInYearAfterFebruary

	c := T((4*int64(daysSinceEpoch) + 3) / gregorian.DaysPer400YearCycle)
	d0c := daysSinceEpoch - (gregorian.DaysPer400YearCycle * c >> 2)

	yoc := (4*d0c + 3) / gregorian.DaysPer4YearSubcycle
	d0y := d0c - (gregorian.DaysPer4YearSubcycle * yoc >> 2)

	m = (5*d0y + 2) / 153
	d = 1 + d0y - (153*m+2)/5

	if m > 9 {
		yoc++
		m -= 9
	} else {
		m += 3
	}

	return 100*c + yoc, m, d
}

// GetYear returns the year containing a non-negative day count.
func GetYear[T mathz.Integer](daysSinceEpoch T) T {
	y := T(400 * (int64(daysSinceEpoch) + 2) / gregorian.DaysPer400YearCycle)
	c := y / 100
	startOfYearAfter := gregorian.DaysInCommonYear*y + (y >> 2) - c + (c >> 2)

	if daysSinceEpoch < startOfYearAfter {
		return y
	}
	return y + 1
}

// GetStartOfYear returns the day count of 1 January of year y. Requires
// y > 0.
func GetStartOfYear[T mathz.Integer](y T) T {
	y--
	c := y / 100
	return gregorian.DaysInCommonYear*y + (y >> 2) - c + (c >> 2)
}

// GetOrdinalParts returns the year and day of the year of a non-negative day
// count.
func GetOrdinalParts[T mathz.Integer](daysSinceEpoch T) (y, doy T) {
	y = GetYear(daysSinceEpoch)
	doy = 1 + daysSinceEpoch - GetStartOfYear(y)
	return y, doy
}
