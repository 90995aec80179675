package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zapponejosh/daycount/internal/calendar"
)

// Prints the moveable feasts of a Gregorian year and, for every built-in
// calendar, the date of 1 January and the new years falling in that year.
// Useful for eyeballing conversions against published tables.

func main() {
	year := flag.Int("year", time.Now().Year(), "Gregorian year to generate dates for")
	flag.Parse()

	if *year < 1 || *year > 9999 {
		fmt.Fprintf(os.Stderr, "year %d out of range [1, 9999]\n", *year)
		os.Exit(2)
	}
	y := int32(*year)

	quiet := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	catalog := calendar.NewDefaultCatalog(quiet)

	fmt.Printf("=== Date Generator for %d ===\n\n", y)

	if err := printFeasts(y); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	jan1 := must(calendar.NewCivilDate(y, 1, 1)).DayNumber()
	dec31 := must(calendar.NewCivilDate(y, 12, 31)).DayNumber()

	// ==========================================================================
	// CALENDARS
	// ==========================================================================
	fmt.Println("=== Calendars ===")
	fmt.Println("Calendar,1 January,New Year,Gregorian,Weekday,Days")
	for _, cal := range catalog.All() {
		first, err := calendar.DateFromDayNumber(cal, jan1)
		if err != nil {
			fmt.Printf("%s,%v,,,,\n", cal.Key(), err)
			continue
		}

		ny := first.Year()
		if cal.StartOfYear(ny) < jan1 {
			ny++
		}
		for ; cal.ValidateYear(ny) == nil && cal.StartOfYear(ny) <= dec31; ny++ {
			start := cal.StartOfYear(ny)
			fmt.Printf("%s,%s,%d,%s,%s,%d\n",
				cal.Key(),
				formatDate(first),
				ny,
				must(calendar.CivilDateFromDayNumber(start)),
				start.DayOfWeek(),
				cal.CountDaysInYear(ny),
			)
		}
	}
}

// printFeasts prints the key dates and the Sundays of Lent and Easter.
func printFeasts(y int32) error {
	easter, err := calendar.GregorianEaster(y)
	if err != nil {
		return err
	}
	julianEaster, err := calendar.JulianEaster(y)
	if err != nil {
		return err
	}
	advent, err := calendar.Advent(y)
	if err != nil {
		return err
	}
	ashWednesday := calendar.AshWednesday(easter)
	pentecost := calendar.Pentecost(easter)

	fmt.Println("Key Dates:")
	fmt.Printf("  Ash Wednesday:   %s\n", civil(ashWednesday))
	fmt.Printf("  Easter:          %s\n", civil(easter))
	fmt.Printf("  Ascension:       %s\n", civil(calendar.Ascension(easter)))
	fmt.Printf("  Pentecost:       %s\n", civil(pentecost))
	fmt.Printf("  Orthodox Easter: %s\n", civil(julianEaster))
	fmt.Printf("  Advent Start:    %s\n", civil(advent))
	fmt.Println()

	// ==========================================================================
	// SUNDAYS
	// ==========================================================================
	firstSundayOfLent := ashWednesday.Next(time.Sunday)
	fmt.Println("Sundays:")
	for d := firstSundayOfLent; d < easter; d += 7 {
		fmt.Printf("  %s  %s Sunday of Lent\n", civil(d), calendar.Ordinal(calendar.WeekOfSeason(d, firstSundayOfLent)))
	}
	for d := easter; d < pentecost; d += 7 {
		fmt.Printf("  %s  %s Sunday of Easter\n", civil(d), calendar.Ordinal(calendar.WeekOfSeason(d, easter)))
	}
	for d := advent; d < advent+28; d += 7 {
		fmt.Printf("  %s  %s Sunday of Advent\n", civil(d), calendar.Ordinal(calendar.WeekOfSeason(d, advent)))
	}
	fmt.Println()
	return nil
}

func civil(dn calendar.DayNumber) string {
	return must(calendar.CivilDateFromDayNumber(dn)).String()
}

func formatDate(d calendar.Date) string {
	y, m, day := d.Parts()
	return fmt.Sprintf("%d-%02d-%02d", y, m, day)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
