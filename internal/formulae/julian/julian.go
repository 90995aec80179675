// Package julian provides allocation-free formulas for the proleptic Julian
// calendar.
//
// Day counts are relative to the epoch 1 January 1 Julian (day 0). The
// conversion uses the same March-based year as the Gregorian formulas, with
// a plain four-year cycle in place of the 400-year one.
package julian

import "github.com/zapponejosh/daycount/internal/mathz"

const (
	// DaysInCommonYear is the length of a common year.
	DaysInCommonYear = 365

	// DaysInYearAfterFebruary is the number of days from 1 March to
	// 31 December inclusive.
	DaysInYearAfterFebruary = 306

	// DaysPer4YearCycle is the length of the leap cycle.
	DaysPer4YearCycle = 1461
)

// IsLeapYear reports whether y is a leap year. Every fourth year is leap,
// including years divisible by 100.
func IsLeapYear[T mathz.Integer](y T) bool {
	return y&3 == 0
}

// CountDaysInYear returns 365 or 366.
func CountDaysInYear[T mathz.Integer](y T) T {
	if IsLeapYear(y) {
		return 366
	}
	return DaysInCommonYear
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

// CountDaysSinceEpoch returns the day count of the date y-m-d.
func CountDaysSinceEpoch[T mathz.Integer](y, m, d T) T {
	if m < 3 {
		y--
		m += 9
	} else {
		m -= 3
	}

	return -DaysInYearAfterFebruary + (DaysPer4YearCycle * y >> 2) + (153*m+2)/5 + d - 1
}

// GetDateParts converts a day count to (year, month, day).
func GetDateParts[T mathz.Integer](daysSinceEpoch T) (y, m, d T) {
	daysSinceEpoch += DaysInYearAfterFebruary

	y = mathz.Divide(4*daysSinceEpoch+3, DaysPer4YearCycle)
	d0y := daysSinceEpoch - (DaysPer4YearCycle * y >> 2)

	m = (5*d0y + 2) / 153
	d = 1 + d0y - (153*m+2)/5

	if m > 9 {
		y++
		m -= 9
	} else {
		m += 3
	}

	return y, m, d
}

// GetYear returns the year containing the given day count.
func GetYear[T mathz.Integer](daysSinceEpoch T) T {
	return mathz.Divide(4*daysSinceEpoch+1464, DaysPer4YearCycle)
}

// GetOrdinalParts returns the year and the day of the year of a day count.
func GetOrdinalParts[T mathz.Integer](daysSinceEpoch T) (y, doy T) {
	y = GetYear(daysSinceEpoch)
	doy = 1 + daysSinceEpoch - GetStartOfYear(y)
	return y, doy
}

// GetStartOfYear returns the day count of 1 January of year y.
func GetStartOfYear[T mathz.Integer](y T) T {
	y--
	return DaysInCommonYear*y + (y >> 2)
}

// CountDaysInYearBeforeMonth returns the number of days from 1 January to
// the first day of month m.
func CountDaysInYearBeforeMonth[T mathz.Integer](y, m T) T {
	if m < 3 {
		return 31 * (m - 1)
	}
	days := 59 + (153*m-457)/5
	if IsLeapYear(y) {
		days++
	}
	return days
}
