package schemas

import (
	"github.com/zapponejosh/daycount/internal/intervals"
	"github.com/zapponejosh/daycount/internal/mathz"
)

// tropicalYears is a 128-year leap cycle: every fourth year is leap except
// multiples of 128. A cycle averages 365.2421875 days, close to the mean
// tropical year.
type tropicalYears struct{}

const daysPer128YearCycle = 128*365 + 32 - 1

func (tropicalYears) family() Family                         { return FamilySolar }
func (tropicalYears) supportedYears() intervals.Range[int32] { return defaultSupportedYears }
func (tropicalYears) daysInCommonYear() int32                { return 365 }

func (tropicalYears) isLeapYear(y int32) bool {
	return y&3 == 0 && y&127 != 0
}

func (tropicalYears) startOfYear(y int32) int32 {
	y--
	return 365*y + (y >> 2) - (y >> 7)
}

func (tropicalYears) yearOf(days int32) int32 {
	// Inside a cycle the leap years are exactly those of the Julian rule.
	c, d := mathz.DivMod(days, daysPer128YearCycle)
	return 128*c + (4*d+3)/1461 + 1
}

// TropicaliaSchema uses the 128-year leap cycle with the Julian months.
type TropicaliaSchema struct {
	regularSchema[tropicalYears, julianMonths]
}

// Tropicalia3031Schema uses the 128-year leap cycle with months alternating
// 30 and 31 days.
type Tropicalia3031Schema struct {
	regularSchema[tropicalYears, months3031]
}

// Tropicalia3130Schema uses the 128-year leap cycle with months alternating
// 31 and 30 days.
type Tropicalia3130Schema struct {
	regularSchema[tropicalYears, months3130]
}
