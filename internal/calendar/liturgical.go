package calendar

import (
	"fmt"
	"time"

	"github.com/zapponejosh/daycount/internal/formulae/gregorian"
)

// SundayBetween returns the first Sunday in [start, end], if any.
func SundayBetween(start, end DayNumber) (DayNumber, bool) {
	sunday := start.NextOnOrAfter(time.Sunday)
	if sunday > end {
		return 0, false
	}
	return sunday, true
}

// Advent returns the first Sunday of Advent of the given Gregorian year:
// the Sunday nearest 30 November, which always falls between 27 November
// and 3 December.
func Advent(year int32) (DayNumber, error) {
	if year < civilMinYear || year > civilMaxYear {
		return 0, newRangeError("year", year, civilMinYear, civilMaxYear, ErrYearOutOfRange)
	}
	start := DayNumber(gregorian.CountDaysSinceEpoch(year, 11, 27))
	sunday, _ := SundayBetween(start, start+6)
	return sunday, nil
}

// WeekOfSeason returns the 1-based week of a season starting on
// seasonStart, or 0 if dn falls before it.
func WeekOfSeason(dn, seasonStart DayNumber) int {
	if dn < seasonStart {
		return 0
	}
	return int(dn-seasonStart)/7 + 1
}

// Ordinal returns the English ordinal form of n (1st, 2nd, 3rd, 4th, ...).
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
