package api

import (
	"github.com/zapponejosh/daycount/internal/calendar"
)

// CalendarInfo describes a calendar of the catalog.
type CalendarInfo struct {
	Key          string `json:"key"`
	Family       string `json:"family"`
	Epoch        int32  `json:"epoch"`
	MonthsInYear int32  `json:"months_in_year"`
	MinYear      int32  `json:"min_year"`
	MaxYear      int32  `json:"max_year"`
	MinDayNumber int32  `json:"min_day_number"`
	MaxDayNumber int32  `json:"max_day_number"`
}

func newCalendarInfo(cal *calendar.Calendar) CalendarInfo {
	months, _ := cal.Schema().IsRegular()
	years := cal.SupportedYears()
	return CalendarInfo{
		Key:          cal.Key(),
		Family:       cal.Schema().Family().String(),
		Epoch:        int32(cal.Epoch()),
		MonthsInYear: months,
		MinYear:      years.Min(),
		MaxYear:      years.Max(),
		MinDayNumber: int32(cal.MinDayNumber()),
		MaxDayNumber: int32(cal.MaxDayNumber()),
	}
}

// DateInfo describes a date and its position on the common timeline.
type DateInfo struct {
	Calendar        string `json:"calendar"`
	Year            int32  `json:"year"`
	Month           int32  `json:"month"`
	Day             int32  `json:"day"`
	DayOfYear       int32  `json:"day_of_year"`
	DayNumber       int32  `json:"day_number"`
	DayOfWeek       string `json:"day_of_week"`
	IsLeapYear      bool   `json:"is_leap_year"`
	IsIntercalary   bool   `json:"is_intercalary"`
	IsSupplementary bool   `json:"is_supplementary"`
}

func newDateInfo(d calendar.Date) DateInfo {
	y, m, day := d.Parts()
	_, doy := d.Ordinal()
	schema := d.Calendar().Schema()
	return DateInfo{
		Calendar:        d.Calendar().Key(),
		Year:            y,
		Month:           m,
		Day:             day,
		DayOfYear:       doy,
		DayNumber:       int32(d.DayNumber()),
		DayOfWeek:       d.DayOfWeek().String(),
		IsLeapYear:      schema.IsLeapYear(y),
		IsIntercalary:   schema.IsIntercalaryDay(y, m, day),
		IsSupplementary: schema.IsSupplementaryDay(y, m, day),
	}
}

// MonthInfo gives the length of one month.
type MonthInfo struct {
	Month int32 `json:"month"`
	Days  int32 `json:"days"`
}

// YearInfo describes one year of a calendar.
type YearInfo struct {
	Calendar       string      `json:"calendar"`
	Year           int32       `json:"year"`
	IsLeapYear     bool        `json:"is_leap_year"`
	Days           int32       `json:"days"`
	StartDayNumber int32       `json:"start_day_number"`
	EndDayNumber   int32       `json:"end_day_number"`
	Months         []MonthInfo `json:"months"`
}

// newYearInfo expects a validated year.
func newYearInfo(cal *calendar.Calendar, year int32) YearInfo {
	n := cal.CountMonthsInYear(year)
	months := make([]MonthInfo, 0, n)
	for m := int32(1); m <= n; m++ {
		months = append(months, MonthInfo{Month: m, Days: cal.CountDaysInMonth(year, m)})
	}
	return YearInfo{
		Calendar:       cal.Key(),
		Year:           year,
		IsLeapYear:     cal.IsLeapYear(year),
		Days:           cal.CountDaysInYear(year),
		StartDayNumber: int32(cal.StartOfYear(year)),
		EndDayNumber:   int32(cal.EndOfYear(year)),
		Months:         months,
	}
}

// ConversionInfo is the result of a conversion between two calendars.
type ConversionInfo struct {
	From DateInfo `json:"from"`
	To   DateInfo `json:"to"`
}

// FeastInfo gives a moveable feast as a Gregorian date.
type FeastInfo struct {
	Date      string `json:"date"`
	DayNumber int32  `json:"day_number"`
	DayOfWeek string `json:"day_of_week"`
}

// EasterInfo lists Easter and the feasts that depend on it.
type EasterInfo struct {
	Year         int32     `json:"year"`
	Rule         string    `json:"rule"`
	Easter       FeastInfo `json:"easter"`
	AshWednesday FeastInfo `json:"ash_wednesday"`
	Ascension    FeastInfo `json:"ascension"`
	Pentecost    FeastInfo `json:"pentecost"`
}

func newFeastInfo(dn calendar.DayNumber) (FeastInfo, error) {
	c, err := calendar.CivilDateFromDayNumber(dn)
	if err != nil {
		return FeastInfo{}, err
	}
	return FeastInfo{
		Date:      c.String(),
		DayNumber: int32(dn),
		DayOfWeek: dn.DayOfWeek().String(),
	}, nil
}

func newEasterInfo(year int32, rule string, easter calendar.DayNumber) (EasterInfo, error) {
	info := EasterInfo{Year: year, Rule: rule}
	feasts := []struct {
		dst *FeastInfo
		dn  calendar.DayNumber
	}{
		{&info.Easter, easter},
		{&info.AshWednesday, calendar.AshWednesday(easter)},
		{&info.Ascension, calendar.Ascension(easter)},
		{&info.Pentecost, calendar.Pentecost(easter)},
	}
	for _, f := range feasts {
		fi, err := newFeastInfo(f.dn)
		if err != nil {
			return EasterInfo{}, err
		}
		*f.dst = fi
	}
	return info, nil
}
