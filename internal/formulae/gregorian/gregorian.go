// Package gregorian provides allocation-free formulas for the proleptic
// Gregorian calendar, for callers that do not need a schema value.
//
// Day counts are relative to the epoch 1 January 1 (day 0). Years are
// astronomical: year 0 precedes year 1 and negative years are supported.
// Every function is generic over the integer width; the 32-bit and 64-bit
// instantiations return identical results for inputs representable in both.
//
// The day-count formulas work on a "March-based" year: March is month 0 and
// January/February belong to the previous year, so the leap day, when there
// is one, is the last day of the shifted year.
package gregorian

import "github.com/zapponejosh/daycount/internal/mathz"

const (
	// DaysInCommonYear is the length of a common year.
	DaysInCommonYear = 365

	// DaysInYearAfterFebruary is the number of days from 1 March to
	// 31 December inclusive.
	DaysInYearAfterFebruary = 306

	// DaysPer400YearCycle is the length of the full leap cycle.
	DaysPer400YearCycle = 146_097

	// DaysPer100YearSubcycle is the length of a century whose last
	// year is common.
	DaysPer100YearSubcycle = 36_524

	// DaysPer4YearSubcycle is the length of a four-year subcycle ending in
	// a leap year.
	DaysPer4YearSubcycle = 1461
)

// IsLeapYear reports whether y is a leap year.
func IsLeapYear[T mathz.Integer](y T) bool {
	if y&3 != 0 {
		return false
	}
	return mathz.Modulo(y, 100) != 0 || mathz.Modulo(y, 400) == 0
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
	// 31, 30 alternate and the pattern flips at August.
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

	c, yoc := mathz.DivMod(y, 100)

	return -DaysInYearAfterFebruary +
		(DaysPer400YearCycle * c >> 2) +
		(DaysPer4YearSubcycle * yoc >> 2) +
		(153*m+2)/5 + d - 1
}

// GetDateParts converts a day count to (year, month, day).
func GetDateParts[T mathz.Integer](daysSinceEpoch T) (y, m, d T) {
	daysSinceEpoch += DaysInYearAfterFebruary

	// 4*daysSinceEpoch overflows int32 long before daysSinceEpoch does.
	c := T(mathz.Divide(4*int64(daysSinceEpoch)+3, DaysPer400YearCycle))
	d0c := daysSinceEpoch - (DaysPer400YearCycle * c >> 2)

	yoc := (4*d0c + 3) / DaysPer4YearSubcycle
	d0y := d0c - (DaysPer4YearSubcycle * yoc >> 2)

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

// GetYear returns the year containing the given day count.
func GetYear[T mathz.Integer](daysSinceEpoch T) T {
	// The estimate is either the right year or one less.
	y := T(mathz.Divide(400*(int64(daysSinceEpoch)+2), DaysPer400YearCycle))
	c := mathz.Divide(y, 100)
	startOfYearAfter := DaysInCommonYear*y + (y >> 2) - c + (c >> 2)

	if daysSinceEpoch < startOfYearAfter {
		return y
	}
	return y + 1
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
	c := mathz.Divide(y, 100)
	return DaysInCommonYear*y + (y >> 2) - c + (c >> 2)
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
