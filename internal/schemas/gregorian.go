package schemas

import (
	"github.com/zapponejosh/daycount/internal/formulae/gregorian"
	"github.com/zapponejosh/daycount/internal/formulae/julian"
	"github.com/zapponejosh/daycount/internal/intervals"
)

type gregorianYears struct{}

func (gregorianYears) family() Family                         { return FamilySolar }
func (gregorianYears) supportedYears() intervals.Range[int32] { return defaultSupportedYears }
func (gregorianYears) daysInCommonYear() int32                { return gregorian.DaysInCommonYear }
func (gregorianYears) isLeapYear(y int32) bool                { return gregorian.IsLeapYear(y) }
func (gregorianYears) startOfYear(y int32) int32              { return gregorian.GetStartOfYear(y) }
func (gregorianYears) yearOf(days int32) int32                { return gregorian.GetYear(days) }

// GregorianSchema is the proleptic Gregorian schema.
type GregorianSchema struct {
	regularSchema[gregorianYears, julianMonths]
}

func (GregorianSchema) CountDaysInMonth(y, m int32) int32 {
	return gregorian.CountDaysInMonth(y, m)
}

func (GregorianSchema) CountDaysSinceEpoch(y, m, d int32) int32 {
	return gregorian.CountDaysSinceEpoch(y, m, d)
}

func (GregorianSchema) GetDateParts(daysSinceEpoch int32) (int32, int32, int32) {
	return gregorian.GetDateParts(daysSinceEpoch)
}

type julianYears struct{}

func (julianYears) family() Family                         { return FamilySolar }
func (julianYears) supportedYears() intervals.Range[int32] { return defaultSupportedYears }
func (julianYears) daysInCommonYear() int32                { return julian.DaysInCommonYear }
func (julianYears) isLeapYear(y int32) bool                { return julian.IsLeapYear(y) }
func (julianYears) startOfYear(y int32) int32              { return julian.GetStartOfYear(y) }
func (julianYears) yearOf(days int32) int32                { return julian.GetYear(days) }

// JulianSchema is the proleptic Julian schema.
type JulianSchema struct {
	regularSchema[julianYears, julianMonths]
}

func (JulianSchema) CountDaysInMonth(y, m int32) int32 {
	return julian.CountDaysInMonth(y, m)
}

func (JulianSchema) CountDaysSinceEpoch(y, m, d int32) int32 {
	return julian.CountDaysSinceEpoch(y, m, d)
}

func (JulianSchema) GetDateParts(daysSinceEpoch int32) (int32, int32, int32) {
	return julian.GetDateParts(daysSinceEpoch)
}
