// Package schemas implements the calendrical schemas: stateless values that
// encode the rules of one calendar and convert between a structured date
// (year, month, day), an ordinal date (year, day of year) and a count of
// days since the schema's epoch.
//
// Every schema is a zero-size value; copies are interchangeable and safe for
// concurrent use. No method validates its input. Callers are expected to
// check years against SupportedYears, months against CountMonthsInYear and
// days against CountDaysInMonth before converting; out-of-range input gives
// meaningless results, never a panic or an error.
//
// Day counts and years are int32. Each schema's supported years are chosen
// so that every formula stays within 32-bit arithmetic, using a 64-bit
// intermediate in the few places where a product would otherwise overflow.
package schemas

import (
	"github.com/zapponejosh/daycount/internal/intervals"
)

// Family classifies a calendar by the astronomical cycle it follows.
type Family int

const (
	FamilyUnknown Family = iota
	// FamilySolar calendars follow the tropical year.
	FamilySolar
	// FamilyLunar calendars follow the synodic month only.
	FamilyLunar
	// FamilyAnnusVagus calendars have a 365-day year with no leap rule.
	FamilyAnnusVagus
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilySolar:
		return "solar"
	case FamilyLunar:
		return "lunar"
	case FamilyAnnusVagus:
		return "annus_vagus"
	default:
		return "unknown"
	}
}

// Schema is the contract every calendrical schema fulfils.
type Schema interface {
	// Family returns the calendrical family of the schema.
	Family() Family
	// SupportedYears returns the years for which the formulas are exact.
	SupportedYears() intervals.Range[int32]
	// MinDaysInYear returns the length of the shortest year.
	MinDaysInYear() int32
	// MinDaysInMonth returns the length of the shortest month.
	MinDaysInMonth() int32
	// IsRegular returns the number of months in a year when it is the
	// same for every year.
	IsRegular() (monthsInYear int32, ok bool)

	IsLeapYear(y int32) bool
	IsIntercalaryDay(y, m, d int32) bool
	IsSupplementaryDay(y, m, d int32) bool

	CountMonthsInYear(y int32) int32
	CountDaysInYear(y int32) int32
	CountDaysInMonth(y, m int32) int32
	CountDaysInYearBeforeMonth(y, m int32) int32
	DaysInMonthDistribution(leap bool) []byte

	CountMonthsSinceEpoch(y, m int32) int32
	GetMonthParts(monthsSinceEpoch int32) (y, m int32)

	CountDaysSinceEpoch(y, m, d int32) int32
	CountDaysSinceEpochOrdinal(y, doy int32) int32
	GetDateParts(daysSinceEpoch int32) (y, m, d int32)
	GetYear(daysSinceEpoch int32) (y, doy int32)
	GetMonth(y, doy int32) (m, d int32)

	GetStartOfYear(y int32) int32
	GetEndOfYear(y int32) int32
	GetDatePartsAtEndOfYear(y int32) (m, d int32)
}

// EpagomenalSchema is implemented by the schemas of the Egyptian family,
// whose years end with days that belong to no ordinary month.
type EpagomenalSchema interface {
	Schema
	// IsEpagomenalDay returns the 1-based epagomenal number of the date,
	// or false if the date falls in an ordinary month.
	IsEpagomenalDay(y, m, d int32) (epagomenalNumber int32, ok bool)
}

// defaultSupportedYears is the year range of schemas whose formulas stay
// within int32 for about a million years either side of the epoch.
var defaultSupportedYears = intervals.New[int32](-999_998, 999_999)

// SupportedDays returns the day counts covered by the supported years of s.
func SupportedDays(s Schema) intervals.Range[int32] {
	years := s.SupportedYears()
	return intervals.New(s.GetStartOfYear(years.Min()), s.GetEndOfYear(years.Max()))
}
