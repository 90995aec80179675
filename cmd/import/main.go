// Command import checks a YAML file of calendar definitions against the
// built-in catalog and prints what the server would register.
//
// Usage:
//
//	go run ./cmd/import -file calendars.yaml
//
// This tool:
// 1. Parses the definitions file (unknown fields are rejected)
// 2. Registers every definition on top of the built-in calendars
// 3. Prints each added calendar with its epoch, supported years and today
//
// Point the server at the same file with CALENDARS_FILE.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zapponejosh/daycount/internal/calendar"
)

func main() {
	path := flag.String("file", "calendars.yaml", "Path to calendar definitions YAML file")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if err := run(*path, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(path string, logger *slog.Logger) error {
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read and parse YAML
	// =========================================================================
	logger.Info("reading definitions file", slog.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open definitions file: %w", err)
	}
	defer f.Close()

	defs, err := calendar.LoadDefinitions(f)
	if err != nil {
		return err
	}
	logger.Info("parsed definitions", slog.Int("calendars", len(defs)))

	// =========================================================================
	// Step 2: Register on top of the built-in catalog
	// =========================================================================
	catalog := calendar.NewDefaultCatalog(logger)
	added, err := catalog.AddDefinitions(defs)

	// =========================================================================
	// Step 3: Summary
	// =========================================================================
	today := calendar.Today()

	fmt.Println()
	fmt.Println("=== Import Summary ===")
	for _, cal := range added {
		epoch, epochErr := calendar.CivilDateFromDayNumber(cal.Epoch())
		epochStr := fmt.Sprintf("day %d", cal.Epoch())
		if epochErr == nil {
			epochStr = epoch.String()
		}

		todayStr := "out of range"
		if d, err := calendar.DateFromDayNumber(cal, today.DayNumber()); err == nil {
			y, m, day := d.Parts()
			todayStr = fmt.Sprintf("%d-%02d-%02d", y, m, day)
		}

		fmt.Printf("%-20s family=%-11s epoch=%s years=%s today=%s\n",
			cal.Key(), cal.Schema().Family(), epochStr, cal.SupportedYears(), todayStr)
	}
	fmt.Printf("Calendars added:     %d\n", len(added))
	fmt.Printf("Catalog size:        %d\n", catalog.Len())
	fmt.Printf("Time elapsed:        %v\n", time.Since(startTime).Round(time.Millisecond))

	if err != nil {
		return fmt.Errorf("register definitions: %w", err)
	}
	return nil
}
