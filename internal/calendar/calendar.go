// Package calendar turns the raw schemas into usable calendars: each one
// pairs a schema with an epoch on the common DayNumber timeline and checks
// every input before handing it to the schema's formulas.
package calendar

import (
	"github.com/zapponejosh/daycount/internal/intervals"
	"github.com/zapponejosh/daycount/internal/schemas"
)

// Calendar is a schema anchored on the DayNumber timeline. A Calendar is
// immutable and safe for concurrent use.
type Calendar struct {
	key    string
	schema schemas.Schema
	epoch  DayNumber

	years intervals.Range[int32]
	// days is the supported range in days since the epoch.
	days intervals.Range[int32]
}

// New returns a calendar using schema whose first day, 1-1-1, falls on epoch.
// The supported years are narrowed, if needed, so that every supported day
// has a DayNumber representable as an int32.
func New(key string, schema schemas.Schema, epoch DayNumber) *Calendar {
	years := schema.SupportedYears()
	lo, hi := years.Endpoints()
	for int64(schema.GetStartOfYear(lo))+int64(epoch) < minDayNumber {
		lo++
	}
	for int64(schema.GetEndOfYear(hi))+int64(epoch) > maxDayNumber {
		hi--
	}
	years = intervals.New(lo, hi)

	return &Calendar{
		key:    key,
		schema: schema,
		epoch:  epoch,
		years:  years,
		days:   intervals.New(schema.GetStartOfYear(lo), schema.GetEndOfYear(hi)),
	}
}

const (
	minDayNumber = -1 << 31
	maxDayNumber = 1<<31 - 1
)

// Key returns the catalog key of the calendar.
func (c *Calendar) Key() string { return c.key }

// Schema returns the underlying schema.
func (c *Calendar) Schema() schemas.Schema { return c.schema }

// Epoch returns the DayNumber of 1-1-1 in this calendar.
func (c *Calendar) Epoch() DayNumber { return c.epoch }

// SupportedYears returns the range of valid years.
func (c *Calendar) SupportedYears() intervals.Range[int32] { return c.years }

// SupportedDays returns the range of valid day numbers.
func (c *Calendar) SupportedDays() intervals.Range[DayNumber] {
	return intervals.New(c.MinDayNumber(), c.MaxDayNumber())
}

// MinDayNumber returns the first day of the first supported year.
func (c *Calendar) MinDayNumber() DayNumber { return c.epoch + DayNumber(c.days.Min()) }

// MaxDayNumber returns the last day of the last supported year.
func (c *Calendar) MaxDayNumber() DayNumber { return c.epoch + DayNumber(c.days.Max()) }

// ValidateYear checks that y is a supported year.
func (c *Calendar) ValidateYear(y int32) error {
	if !c.years.Contains(y) {
		return newRangeError("year", y, c.years.Min(), c.years.Max(), ErrYearOutOfRange)
	}
	return nil
}

// ValidateYearMonthDay checks that y-m-d is a valid date.
func (c *Calendar) ValidateYearMonthDay(y, m, d int32) error {
	if err := c.ValidateYear(y); err != nil {
		return err
	}
	if n := c.schema.CountMonthsInYear(y); m < 1 || m > n {
		return newRangeError("month", m, 1, n, ErrMonthOutOfRange)
	}
	// Every month has at least MinDaysInMonth days; skip the exact count.
	if d < 1 || d > c.schema.MinDaysInMonth() {
		if n := c.schema.CountDaysInMonth(y, m); d < 1 || d > n {
			return newRangeError("day", d, 1, n, ErrDayOutOfRange)
		}
	}
	return nil
}

// ValidateOrdinal checks that doy is a valid day of year y.
func (c *Calendar) ValidateOrdinal(y, doy int32) error {
	if err := c.ValidateYear(y); err != nil {
		return err
	}
	if doy < 1 || doy > c.schema.MinDaysInYear() {
		if n := c.schema.CountDaysInYear(y); doy < 1 || doy > n {
			return newRangeError("day of year", doy, 1, n, ErrDayOfYearOutOfRange)
		}
	}
	return nil
}

// ValidateDayNumber checks that dn lies within the supported days.
func (c *Calendar) ValidateDayNumber(dn DayNumber) error {
	if lo, hi := c.MinDayNumber(), c.MaxDayNumber(); dn < lo || dn > hi {
		return newRangeError("day number", dn, lo, hi, ErrDayNumberOutOfRange)
	}
	return nil
}

// IsLeapYear reports whether y is a leap year. y must be supported.
func (c *Calendar) IsLeapYear(y int32) bool { return c.schema.IsLeapYear(y) }

// CountMonthsInYear returns the number of months in year y.
func (c *Calendar) CountMonthsInYear(y int32) int32 { return c.schema.CountMonthsInYear(y) }

// CountDaysInYear returns the number of days in year y.
func (c *Calendar) CountDaysInYear(y int32) int32 { return c.schema.CountDaysInYear(y) }

// CountDaysInMonth returns the number of days in month m of year y.
func (c *Calendar) CountDaysInMonth(y, m int32) int32 { return c.schema.CountDaysInMonth(y, m) }

// StartOfYear returns the DayNumber of the first day of year y.
func (c *Calendar) StartOfYear(y int32) DayNumber {
	return c.epoch + DayNumber(c.schema.GetStartOfYear(y))
}

// EndOfYear returns the DayNumber of the last day of year y.
func (c *Calendar) EndOfYear(y int32) DayNumber {
	return c.epoch + DayNumber(c.schema.GetEndOfYear(y))
}
