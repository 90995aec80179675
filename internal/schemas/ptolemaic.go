package schemas

import (
	"github.com/zapponejosh/daycount/internal/formulae/gregorian"
	"github.com/zapponejosh/daycount/internal/intervals"
	"github.com/zapponejosh/daycount/internal/mathz"
)

// Calendars of the Egyptian family: twelve months of 30 days and five
// epagomenal days, plus a sixth in leap years. Each comes in two forms, with
// the epagomenal days either attached to the twelfth month or counted as a
// thirteenth month. Both forms of a calendar share the same day counts.

// egyptianYears is the wandering year of 365 days.
type egyptianYears struct{}

func (egyptianYears) family() Family                         { return FamilyAnnusVagus }
func (egyptianYears) supportedYears() intervals.Range[int32] { return defaultSupportedYears }
func (egyptianYears) daysInCommonYear() int32                { return 365 }
func (egyptianYears) isLeapYear(int32) bool                  { return false }
func (egyptianYears) startOfYear(y int32) int32              { return 365 * (y - 1) }
func (egyptianYears) yearOf(days int32) int32                { return mathz.Divide(days, 365) + 1 }

// copticYears: every fourth year is leap, the one preceding a multiple of 4.
type copticYears struct{}

func (copticYears) family() Family                         { return FamilySolar }
func (copticYears) supportedYears() intervals.Range[int32] { return defaultSupportedYears }
func (copticYears) daysInCommonYear() int32                { return 365 }
func (copticYears) isLeapYear(y int32) bool                { return y&3 == 3 }

func (copticYears) startOfYear(y int32) int32 {
	return 365*(y-1) + mathz.Divide4(y)
}

func (copticYears) yearOf(days int32) int32 {
	return mathz.Divide(4*days+1463, 1461)
}

// frenchRepublicanYears follows the Gregorian rule, except that years
// divisible by 4000 are common.
type frenchRepublicanYears struct{}

// daysPer4000YearCycle is ten Gregorian cycles minus the dropped leap day.
const daysPer4000YearCycle = 10*gregorian.DaysPer400YearCycle - 1

func (frenchRepublicanYears) family() Family                         { return FamilySolar }
func (frenchRepublicanYears) supportedYears() intervals.Range[int32] { return defaultSupportedYears }
func (frenchRepublicanYears) daysInCommonYear() int32                { return 365 }

func (frenchRepublicanYears) isLeapYear(y int32) bool {
	return gregorian.IsLeapYear(y) && mathz.Modulo(y, 4000) != 0
}

func (frenchRepublicanYears) startOfYear(y int32) int32 {
	y--
	c := mathz.Divide(y, 100)
	return 365*y + mathz.Divide4(y) - c + mathz.Divide4(c) - mathz.Divide(y, 4000)
}

func (frenchRepublicanYears) yearOf(days int32) int32 {
	// Within a 4000-year cycle the Gregorian formula is exact.
	c, d := mathz.DivMod(days, daysPer4000YearCycle)
	return 4000*c + gregorian.GetYear(d)
}

// Egyptian12Schema is the Egyptian calendar with the epagomenal days in the
// twelfth month.
type Egyptian12Schema struct {
	epagomenal[egyptianYears, ptolemaic12Months]
}

// Egyptian13Schema is the Egyptian calendar with a thirteenth month of
// epagomenal days.
type Egyptian13Schema struct {
	epagomenal[egyptianYears, ptolemaic13Months]
}

// Coptic12Schema is the Coptic (and Ethiopic) calendar with the epagomenal
// days in the twelfth month.
type Coptic12Schema struct {
	epagomenal[copticYears, ptolemaic12Months]
}

// Coptic13Schema is the Coptic (and Ethiopic) calendar with a thirteenth
// month of epagomenal days.
type Coptic13Schema struct {
	epagomenal[copticYears, ptolemaic13Months]
}

// FrenchRepublican12Schema is the arithmetical French Republican calendar
// with the complementary days in the twelfth month.
type FrenchRepublican12Schema struct {
	epagomenal[frenchRepublicanYears, ptolemaic12Months]
}

// FrenchRepublican13Schema is the arithmetical French Republican calendar
// with a thirteenth month of complementary days.
type FrenchRepublican13Schema struct {
	epagomenal[frenchRepublicanYears, ptolemaic13Months]
}
