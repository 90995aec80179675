package calendar

import (
	"github.com/zapponejosh/daycount/internal/formulae/gregorian"
	"github.com/zapponejosh/daycount/internal/formulae/julian"
)

// Easter rules accepted by EasterRule.
const (
	RuleGregorian = "gregorian"
	RuleJulian    = "julian"
)

// Offsets of the moveable feasts from Easter Sunday.
const (
	ashWednesdayOffset = -46 // 40 days of Lent plus the six Sundays
	ascensionOffset    = 39
	pentecostOffset    = 49
)

// GregorianEaster returns Easter Sunday of the given Gregorian year.
//
// The computus is the one described by J.M. Oudin (1940); it is valid for
// years 1 through 9999 of the proleptic Gregorian calendar.
func GregorianEaster(year int32) (DayNumber, error) {
	if year < civilMinYear || year > civilMaxYear {
		return 0, newRangeError("year", year, civilMinYear, civilMaxYear, ErrYearOutOfRange)
	}

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return DayNumber(gregorian.CountDaysSinceEpoch(year, month, day)), nil
}

// JulianEaster returns Easter Sunday of the given Julian year, the date
// observed by the Orthodox churches, as a DayNumber.
func JulianEaster(year int32) (DayNumber, error) {
	if year < civilMinYear || year > civilMaxYear {
		return 0, newRangeError("year", year, civilMinYear, civilMaxYear, ErrYearOutOfRange)
	}

	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := (d+e+114)%31 + 1

	return julianEpoch + DayNumber(julian.CountDaysSinceEpoch(year, month, day)), nil
}

// EasterRule returns Easter Sunday under the named rule, RuleGregorian or
// RuleJulian.
func EasterRule(rule string, year int32) (DayNumber, error) {
	switch rule {
	case RuleGregorian, "":
		return GregorianEaster(year)
	case RuleJulian:
		return JulianEaster(year)
	default:
		return 0, ErrUnknownRule
	}
}

// AshWednesday returns the first day of Lent for the given Easter Sunday.
func AshWednesday(easter DayNumber) DayNumber { return easter + ashWednesdayOffset }

// Ascension returns Ascension Thursday for the given Easter Sunday.
func Ascension(easter DayNumber) DayNumber { return easter + ascensionOffset }

// Pentecost returns Pentecost Sunday for the given Easter Sunday.
func Pentecost(easter DayNumber) DayNumber { return easter + pentecostOffset }
