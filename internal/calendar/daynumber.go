package calendar

import (
	"time"

	"github.com/zapponejosh/daycount/internal/mathz"
)

// DayNumber counts days from Monday 1 January 1 of the proleptic Gregorian
// calendar (day 0). It is the common timeline on which dates of different
// calendars are compared and converted.
type DayNumber int32

// DayOfWeek returns the day of the week, Sunday being 0 as in time.Weekday.
func (dn DayNumber) DayOfWeek() time.Weekday {
	// Day 0 is a Monday.
	return time.Weekday(mathz.Modulo(int32(dn)+1, 7))
}

// NextOnOrAfter returns the first day on or after dn falling on dow.
func (dn DayNumber) NextOnOrAfter(dow time.Weekday) DayNumber {
	return dn + DayNumber(mathz.Modulo(int32(dow)-int32(dn.DayOfWeek()), 7))
}

// Next returns the first day strictly after dn falling on dow.
func (dn DayNumber) Next(dow time.Weekday) DayNumber {
	return (dn + 1).NextOnOrAfter(dow)
}

// PreviousOnOrBefore returns the last day on or before dn falling on dow.
func (dn DayNumber) PreviousOnOrBefore(dow time.Weekday) DayNumber {
	return dn - DayNumber(mathz.Modulo(int32(dn.DayOfWeek())-int32(dow), 7))
}

// Previous returns the last day strictly before dn falling on dow.
func (dn DayNumber) Previous(dow time.Weekday) DayNumber {
	return (dn - 1).PreviousOnOrBefore(dow)
}
