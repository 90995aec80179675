package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/zapponejosh/daycount/internal/api"
	"github.com/zapponejosh/daycount/internal/calendar"
)

// Walks every day of a span of Gregorian years through the /range endpoint
// of every calendar and checks that consecutive day numbers map to
// consecutive dates.

// APIResponse matches the API response structure
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *api.ErrorInfo  `json:"error,omitempty"`
}

// Failure describes one broken transition or request.
type Failure struct {
	Calendar  string `json:"calendar"`
	DayNumber int32  `json:"day_number"`
	Error     string `json:"error"`
}

// CalendarStats tracks statistics for each calendar
type CalendarStats struct {
	Calendar    string `json:"calendar"`
	TotalDays   int    `json:"total_days"`
	FailedDays  int    `json:"failed_days"`
	Years       int    `json:"years"`
	LeapYears   int    `json:"leap_years"`
	LastYearSet bool   `json:"-"`
	LastYear    int32  `json:"-"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	startYear := flag.Int("start", 2024, "Start year (Gregorian)")
	years := flag.Int("years", 4, "Number of years to test")
	chunk := flag.Int("chunk", 366, "Days per range request (must not exceed the server limit)")
	verbose := flag.Bool("v", false, "Verbose output (show each request)")
	outputFile := flag.String("o", "", "Output results to JSON file")
	flag.Parse()

	endYear := *startYear + *years - 1

	start, err := calendar.NewCivilDate(int32(*startYear), 1, 1)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}
	end, err := calendar.NewCivilDate(int32(endYear), 12, 31)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	fmt.Println("================================================================")
	fmt.Println("Daycount API - Full Coverage Test")
	fmt.Println("================================================================")
	fmt.Printf("Base URL:    %s\n", *baseURL)
	fmt.Printf("Date Range:  %s to %s\n", start, end)
	fmt.Printf("Total Years: %d\n", *years)
	fmt.Println()

	client := &http.Client{Timeout: 10 * time.Second}

	var calendars []api.CalendarInfo
	if err := get(client, *baseURL+"/api/v1/calendars", &calendars); err != nil {
		fmt.Printf("Error: Cannot list calendars at %s: %v\n", *baseURL, err)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	var failures []Failure
	stats := make(map[string]*CalendarStats, len(calendars))
	for _, info := range calendars {
		s := &CalendarStats{Calendar: info.Key}
		stats[info.Key] = s
		failures = append(failures, sweep(client, *baseURL, info.Key, start.DayNumber(), end.DayNumber(), *chunk, *verbose, s)...)
		fmt.Printf("  %-20s %d days, %d years (%d leap), %d failures\n",
			info.Key+":", s.TotalDays, s.Years, s.LeapYears, s.FailedDays)
	}

	printSummary(stats, failures)

	if *outputFile != "" {
		saveResults(*outputFile, stats, failures)
	}

	if len(failures) > 0 {
		os.Exit(1)
	}
}

// sweep requests [first, last] in chunks and checks every transition.
func sweep(client *http.Client, baseURL, key string, first, last calendar.DayNumber, chunk int, verbose bool, s *CalendarStats) []Failure {
	var failures []Failure
	var prev *api.DateInfo

	for lo := first; lo <= last; lo += calendar.DayNumber(chunk) {
		hi := min(lo+calendar.DayNumber(chunk)-1, last)
		url := fmt.Sprintf("%s/api/v1/calendars/%s/range?start=%d&end=%d", baseURL, key, lo, hi)
		if verbose {
			fmt.Printf("    GET %s\n", url)
		}

		var dates []api.DateInfo
		if err := get(client, url, &dates); err != nil {
			failures = append(failures, Failure{Calendar: key, DayNumber: int32(lo), Error: err.Error()})
			s.FailedDays += int(hi-lo) + 1
			prev = nil
			continue
		}

		for i := range dates {
			d := &dates[i]
			s.TotalDays++
			if !s.LastYearSet || d.Year != s.LastYear {
				s.Years++
				if d.IsLeapYear {
					s.LeapYears++
				}
				s.LastYear, s.LastYearSet = d.Year, true
			}
			if prev != nil {
				if msg := checkTransition(prev, d); msg != "" {
					s.FailedDays++
					failures = append(failures, Failure{Calendar: key, DayNumber: d.DayNumber, Error: msg})
				}
			}
			prev = d
		}
	}
	return failures
}

// checkTransition reports what is wrong with next following prev, or "".
func checkTransition(prev, next *api.DateInfo) string {
	if next.DayNumber != prev.DayNumber+1 {
		return fmt.Sprintf("day number %d follows %d", next.DayNumber, prev.DayNumber)
	}
	switch {
	case next.Year == prev.Year && next.Month == prev.Month && next.Day == prev.Day+1:
	case next.Year == prev.Year && next.Month == prev.Month+1 && next.Day == 1:
	case next.Year == prev.Year+1 && next.Month == 1 && next.Day == 1:
		if next.DayOfYear != 1 {
			return fmt.Sprintf("new year starts on day of year %d", next.DayOfYear)
		}
	default:
		return fmt.Sprintf("%d-%02d-%02d follows %d-%02d-%02d",
			next.Year, next.Month, next.Day, prev.Year, prev.Month, prev.Day)
	}
	if next.Year == prev.Year && next.DayOfYear != prev.DayOfYear+1 {
		return fmt.Sprintf("day of year %d follows %d", next.DayOfYear, prev.DayOfYear)
	}
	return ""
}

func get(client *http.Client, url string, target any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return fmt.Errorf("API error: %s", errMsg)
	}
	return json.Unmarshal(apiResp.Data, target)
}

func printSummary(stats map[string]*CalendarStats, failures []Failure) {
	total := 0
	for _, s := range stats {
		total += s.TotalDays
	}

	fmt.Println()
	fmt.Println("================================================================")
	fmt.Println("Summary")
	fmt.Println("================================================================")
	fmt.Printf("  Calendars: %d\n", len(stats))
	fmt.Printf("  Days:      %d\n", total)
	fmt.Printf("  Failures:  %d\n", len(failures))

	if len(failures) == 0 {
		fmt.Println()
		fmt.Println("All transitions consistent! ✓")
		return
	}

	sort.Slice(failures, func(i, j int) bool {
		if failures[i].Calendar != failures[j].Calendar {
			return failures[i].Calendar < failures[j].Calendar
		}
		return failures[i].DayNumber < failures[j].DayNumber
	})

	fmt.Println()
	fmt.Println("Failures:")
	for _, f := range failures {
		fmt.Printf("  • %s @ %d: %s\n", f.Calendar, f.DayNumber, f.Error)
	}
}

func saveResults(filename string, stats map[string]*CalendarStats, failures []Failure) {
	output := struct {
		GeneratedAt string                    `json:"generated_at"`
		ByCalendar  map[string]*CalendarStats `json:"by_calendar"`
		Failures    []Failure                 `json:"failures"`
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		ByCalendar:  stats,
		Failures:    failures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling results: %v\n", err)
		return
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		return
	}

	fmt.Printf("Results saved to: %s\n", filename)
}
