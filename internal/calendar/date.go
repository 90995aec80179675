package calendar

import (
	"cmp"
	"fmt"
	"time"
)

// Date is a day of a particular calendar. Dates are immutable values; the
// zero Date has no calendar and must not be used.
type Date struct {
	cal *Calendar
	// days since the calendar's epoch
	days int32
}

// NewDate returns the date y-m-d of cal.
func NewDate(cal *Calendar, y, m, d int32) (Date, error) {
	if err := cal.ValidateYearMonthDay(y, m, d); err != nil {
		return Date{}, fmt.Errorf("%s date: %w", cal.key, err)
	}
	return Date{cal: cal, days: cal.schema.CountDaysSinceEpoch(y, m, d)}, nil
}

// NewOrdinalDate returns the date of cal given by a year and a day of year.
func NewOrdinalDate(cal *Calendar, y, doy int32) (Date, error) {
	if err := cal.ValidateOrdinal(y, doy); err != nil {
		return Date{}, fmt.Errorf("%s ordinal date: %w", cal.key, err)
	}
	return Date{cal: cal, days: cal.schema.CountDaysSinceEpochOrdinal(y, doy)}, nil
}

// DateFromDayNumber returns the date of cal falling on dn.
func DateFromDayNumber(cal *Calendar, dn DayNumber) (Date, error) {
	if err := cal.ValidateDayNumber(dn); err != nil {
		return Date{}, fmt.Errorf("%s date: %w", cal.key, err)
	}
	return Date{cal: cal, days: int32(dn - cal.epoch)}, nil
}

// Calendar returns the calendar of the date.
func (d Date) Calendar() *Calendar { return d.cal }

// Parts returns the year, month and day of month.
func (d Date) Parts() (y, m, day int32) { return d.cal.schema.GetDateParts(d.days) }

// Ordinal returns the year and the day of the year.
func (d Date) Ordinal() (y, doy int32) { return d.cal.schema.GetYear(d.days) }

// Year returns the year of the date.
func (d Date) Year() int32 {
	y, _ := d.cal.schema.GetYear(d.days)
	return y
}

// DaysSinceEpoch returns the number of days since 1-1-1 of the calendar.
func (d Date) DaysSinceEpoch() int32 { return d.days }

// DayNumber returns the position of the date on the common timeline.
func (d Date) DayNumber() DayNumber { return d.cal.epoch + DayNumber(d.days) }

// DayOfWeek returns the day of the week.
func (d Date) DayOfWeek() time.Weekday { return d.DayNumber().DayOfWeek() }

// IsLeapYear reports whether the date falls in a leap year.
func (d Date) IsLeapYear() bool { return d.cal.schema.IsLeapYear(d.Year()) }

// IsIntercalary reports whether the date is the day added in leap years.
func (d Date) IsIntercalary() bool {
	y, m, day := d.Parts()
	return d.cal.schema.IsIntercalaryDay(y, m, day)
}

// IsSupplementary reports whether the date lies outside the ordinary months,
// such as the epagomenal days of the Egyptian calendar.
func (d Date) IsSupplementary() bool {
	y, m, day := d.Parts()
	return d.cal.schema.IsSupplementaryDay(y, m, day)
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int32) (Date, error) {
	days := int64(d.days) + int64(n)
	if days < int64(d.cal.days.Min()) || days > int64(d.cal.days.Max()) {
		return Date{}, fmt.Errorf("%s date: %w", d.cal.key,
			newRangeError("day number", int64(d.cal.epoch)+days,
				int64(d.cal.MinDayNumber()), int64(d.cal.MaxDayNumber()), ErrDayNumberOutOfRange))
	}
	return Date{cal: d.cal, days: int32(days)}, nil
}

// NextDay returns the day after d.
func (d Date) NextDay() (Date, error) { return d.AddDays(1) }

// PreviousDay returns the day before d.
func (d Date) PreviousDay() (Date, error) { return d.AddDays(-1) }

// CountDaysSince returns the number of days from other to d. The dates may
// belong to different calendars.
func (d Date) CountDaysSince(other Date) int64 {
	return int64(d.DayNumber()) - int64(other.DayNumber())
}

// WithCalendar returns the same day expressed in cal.
func (d Date) WithCalendar(cal *Calendar) (Date, error) {
	if cal == d.cal {
		return d, nil
	}
	return DateFromDayNumber(cal, d.DayNumber())
}

// Compare returns -1, 0 or +1 depending on whether d falls before, on or
// after other on the common timeline.
func (d Date) Compare(other Date) int {
	return cmp.Compare(d.DayNumber(), other.DayNumber())
}

// Equal reports whether d and other are the same day of the same calendar.
func (d Date) Equal(other Date) bool {
	return d.cal == other.cal && d.days == other.days
}

// String formats the date as year-month-day followed by the calendar key.
func (d Date) String() string {
	y, m, day := d.Parts()
	return fmt.Sprintf("%04d-%02d-%02d (%s)", y, m, day, d.cal.key)
}
