package schemas

import (
	"github.com/zapponejosh/daycount/internal/intervals"
)

// yearRule decides which years are leap and where each year starts.
type yearRule interface {
	family() Family
	supportedYears() intervals.Range[int32]
	daysInCommonYear() int32
	isLeapYear(y int32) bool
	// startOfYear returns the day count of the first day of year y.
	startOfYear(y int32) int32
	// yearOf returns the year containing the given day count.
	yearOf(daysSinceEpoch int32) int32
}

// monthLayout splits a year into a fixed number of months.
type monthLayout interface {
	monthsInYear() int32
	minDaysInMonth() int32
	daysInMonth(leap bool, m int32) int32
	daysBeforeMonth(leap bool, m int32) int32
	// monthOf converts a day of the year into a month and a day of the month.
	monthOf(leap bool, doy int32) (m, d int32)
	lastMonthDay(leap bool) (m, d int32)
	// intercalaryDay reports whether m-d is the day added in leap years.
	intercalaryDay(m, d int32) bool
	// supplementaryNumber returns the 1-based index of a day lying outside
	// the ordinary months, or 0.
	supplementaryNumber(m, d int32) int32
	distribution(leap bool) []byte
}

// regularSchema composes a year rule and a month layout into a Schema.
// Concrete schemas embed it and override the methods for which they know a
// faster formula.
type regularSchema[Y yearRule, L monthLayout] struct {
	years  Y
	months L
}

func (s regularSchema[Y, L]) Family() Family { return s.years.family() }

func (s regularSchema[Y, L]) SupportedYears() intervals.Range[int32] {
	return s.years.supportedYears()
}

func (s regularSchema[Y, L]) MinDaysInYear() int32 { return s.years.daysInCommonYear() }

func (s regularSchema[Y, L]) MinDaysInMonth() int32 { return s.months.minDaysInMonth() }

func (s regularSchema[Y, L]) IsRegular() (int32, bool) { return s.months.monthsInYear(), true }

func (s regularSchema[Y, L]) IsLeapYear(y int32) bool { return s.years.isLeapYear(y) }

func (s regularSchema[Y, L]) IsIntercalaryDay(y, m, d int32) bool {
	return s.months.intercalaryDay(m, d)
}

func (s regularSchema[Y, L]) IsSupplementaryDay(y, m, d int32) bool {
	return s.months.supplementaryNumber(m, d) > 0
}

func (s regularSchema[Y, L]) CountMonthsInYear(y int32) int32 { return s.months.monthsInYear() }

func (s regularSchema[Y, L]) CountDaysInYear(y int32) int32 {
	if s.years.isLeapYear(y) {
		return s.years.daysInCommonYear() + 1
	}
	return s.years.daysInCommonYear()
}

func (s regularSchema[Y, L]) CountDaysInMonth(y, m int32) int32 {
	return s.months.daysInMonth(s.years.isLeapYear(y), m)
}

func (s regularSchema[Y, L]) CountDaysInYearBeforeMonth(y, m int32) int32 {
	return s.months.daysBeforeMonth(s.years.isLeapYear(y), m)
}

// DaysInMonthDistribution returns a fresh slice; callers may modify it.
func (s regularSchema[Y, L]) DaysInMonthDistribution(leap bool) []byte {
	return s.months.distribution(leap)
}

func (s regularSchema[Y, L]) CountMonthsSinceEpoch(y, m int32) int32 {
	return countMonthsSinceEpoch(y, m, s.months.monthsInYear())
}

func (s regularSchema[Y, L]) GetMonthParts(monthsSinceEpoch int32) (int32, int32) {
	return getMonthParts(monthsSinceEpoch, s.months.monthsInYear())
}

func (s regularSchema[Y, L]) CountDaysSinceEpoch(y, m, d int32) int32 {
	return s.years.startOfYear(y) + s.CountDaysInYearBeforeMonth(y, m) + d - 1
}

func (s regularSchema[Y, L]) CountDaysSinceEpochOrdinal(y, doy int32) int32 {
	return s.years.startOfYear(y) + doy - 1
}

func (s regularSchema[Y, L]) GetDateParts(daysSinceEpoch int32) (int32, int32, int32) {
	y, doy := s.GetYear(daysSinceEpoch)
	m, d := s.GetMonth(y, doy)
	return y, m, d
}

func (s regularSchema[Y, L]) GetYear(daysSinceEpoch int32) (int32, int32) {
	y := s.years.yearOf(daysSinceEpoch)
	return y, daysSinceEpoch - s.years.startOfYear(y) + 1
}

func (s regularSchema[Y, L]) GetMonth(y, doy int32) (int32, int32) {
	return s.months.monthOf(s.years.isLeapYear(y), doy)
}

func (s regularSchema[Y, L]) GetStartOfYear(y int32) int32 { return s.years.startOfYear(y) }

func (s regularSchema[Y, L]) GetEndOfYear(y int32) int32 {
	return s.years.startOfYear(y) + s.CountDaysInYear(y) - 1
}

func (s regularSchema[Y, L]) GetDatePartsAtEndOfYear(y int32) (int32, int32) {
	return s.months.lastMonthDay(s.years.isLeapYear(y))
}

// epagomenal adds the epagomenal-day query to a regular schema.
type epagomenal[Y yearRule, L monthLayout] struct {
	regularSchema[Y, L]
}

func (s epagomenal[Y, L]) IsEpagomenalDay(y, m, d int32) (int32, bool) {
	n := s.months.supplementaryNumber(m, d)
	return n, n > 0
}

func leapDays(leap bool) int32 {
	if leap {
		return 1
	}
	return 0
}
