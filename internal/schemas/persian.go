package schemas

import (
	"github.com/zapponejosh/daycount/internal/intervals"
	"github.com/zapponejosh/daycount/internal/mathz"
)

// The arithmetical Persian calendar repeats every 2820 years. Years are
// aligned on 474 so that the leap pattern of a cycle is a linear function
// of the year within it.
const (
	persianCycleYears = 2820
	persianCycleDays  = 1_029_983
	// persianCycleStart is the day count of 1 Farvardin 475, the first year
	// of the reference cycle.
	persianCycleStart = 173_125
)

type persianYears struct{}

func (persianYears) family() Family                         { return FamilySolar }
func (persianYears) supportedYears() intervals.Range[int32] { return defaultSupportedYears }
func (persianYears) daysInCommonYear() int32                { return 365 }

func (persianYears) isLeapYear(y int32) bool {
	yy := mathz.Modulo(y-474, persianCycleYears) + 474
	return (31*(yy+38))%128 < 31
}

func (persianYears) startOfYear(y int32) int32 {
	c, yy := mathz.DivMod(y-474, persianCycleYears)
	yy += 474
	return persianCycleDays*c + 365*(yy-1) + (31*yy-5)/128
}

func (persianYears) yearOf(days int32) int32 {
	c, d := mathz.DivMod(days-persianCycleStart, persianCycleDays)
	var yy int32
	if d == persianCycleDays-1 {
		// Last day of the cycle: the linear estimate overshoots by one.
		yy = persianCycleYears
	} else {
		yy = (128*d + 46_878) / 46_751
	}
	return 474 + persianCycleYears*c + yy
}

// Persian2820Schema is the arithmetical Persian calendar with its 2820-year
// leap cycle.
type Persian2820Schema struct {
	regularSchema[persianYears, persianMonths]
}
