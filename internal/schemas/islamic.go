package schemas

import (
	"github.com/zapponejosh/daycount/internal/intervals"
	"github.com/zapponejosh/daycount/internal/mathz"
)

// tabularIslamicYears is the 30-year cycle with 11 leap years (2, 5, 7, 10,
// 13, 16, 18, 21, 24, 26 and 29).
type tabularIslamicYears struct{}

// The product 30*days must fit in int32.
var tabularIslamicSupportedYears = intervals.New[int32](-199_999, 200_000)

func (tabularIslamicYears) family() Family { return FamilyLunar }

func (tabularIslamicYears) supportedYears() intervals.Range[int32] {
	return tabularIslamicSupportedYears
}

func (tabularIslamicYears) daysInCommonYear() int32 { return 354 }

func (tabularIslamicYears) isLeapYear(y int32) bool {
	return mathz.Modulo(14+11*y, 30) < 11
}

func (tabularIslamicYears) startOfYear(y int32) int32 {
	return 354*(y-1) + mathz.Divide(3+11*y, 30)
}

func (tabularIslamicYears) yearOf(days int32) int32 {
	return mathz.Divide(30*days+10_646, 10_631)
}

// TabularIslamicSchema is the arithmetical Islamic calendar.
type TabularIslamicSchema struct {
	regularSchema[tabularIslamicYears, lunarMonths]
}
