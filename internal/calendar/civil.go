package calendar

import (
	"fmt"
	"time"

	"github.com/zapponejosh/daycount/internal/formulae/civil"
)

const (
	civilMinYear = 1
	civilMaxYear = 9999
	// civilMaxDays is the day count of 31 December 9999.
	civilMaxDays = 3_652_058
)

// CivilDate is a Gregorian date restricted to years 1 through 9999, the
// range of the usual four-digit date formats. Its conversions use the
// faster formulas valid for positive years only.
type CivilDate struct {
	// days since 1 January 1, equal to the DayNumber
	days int32
}

// NewCivilDate returns the Gregorian date y-m-d.
func NewCivilDate(y, m, d int32) (CivilDate, error) {
	if y < civilMinYear || y > civilMaxYear {
		return CivilDate{}, newRangeError("year", y, civilMinYear, civilMaxYear, ErrYearOutOfRange)
	}
	if m < 1 || m > 12 {
		return CivilDate{}, newRangeError("month", m, 1, 12, ErrMonthOutOfRange)
	}
	if n := civil.CountDaysInMonth(y, m); d < 1 || d > n {
		return CivilDate{}, newRangeError("day", d, 1, n, ErrDayOutOfRange)
	}
	return CivilDate{days: civil.CountDaysSinceEpoch(y, m, d)}, nil
}

// CivilDateFromDayNumber returns the Gregorian date falling on dn.
func CivilDateFromDayNumber(dn DayNumber) (CivilDate, error) {
	if dn < 0 || dn > civilMaxDays {
		return CivilDate{}, newRangeError("day number", dn, 0, civilMaxDays, ErrDayNumberOutOfRange)
	}
	return CivilDate{days: int32(dn)}, nil
}

// CivilDateFromTime returns the date of t in its own location.
func CivilDateFromTime(t time.Time) (CivilDate, error) {
	y, m, d := t.Date()
	return NewCivilDate(int32(y), int32(m), int32(d))
}

// Today returns the current UTC date.
func Today() CivilDate {
	// time.Now is always within years 1..9999.
	c, _ := CivilDateFromTime(time.Now().UTC())
	return c
}

// Parts returns the year, month and day.
func (c CivilDate) Parts() (y, m, d int32) { return civil.GetDateParts(c.days) }

// Ordinal returns the year and the day of the year.
func (c CivilDate) Ordinal() (y, doy int32) { return civil.GetOrdinalParts(c.days) }

// DayNumber returns the position of the date on the common timeline.
func (c CivilDate) DayNumber() DayNumber { return DayNumber(c.days) }

// DayOfWeek returns the day of the week.
func (c CivilDate) DayOfWeek() time.Weekday { return c.DayNumber().DayOfWeek() }

// IsLeapYear reports whether the date falls in a leap year.
func (c CivilDate) IsLeapYear() bool {
	y, _ := c.Ordinal()
	return civil.IsLeapYear(y)
}

// AddDays returns the date n days after c.
func (c CivilDate) AddDays(n int32) (CivilDate, error) {
	days := int64(c.days) + int64(n)
	if days < 0 || days > civilMaxDays {
		return CivilDate{}, newRangeError("day number", days, 0, civilMaxDays, ErrDayNumberOutOfRange)
	}
	return CivilDate{days: int32(days)}, nil
}

// Time returns midnight UTC at the start of the date.
func (c CivilDate) Time() time.Time {
	y, m, d := c.Parts()
	return time.Date(int(y), time.Month(m), int(d), 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (c CivilDate) String() string {
	y, m, d := c.Parts()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
