package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/daycount/internal/api"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *api.ErrorInfo  `json:"error,omitempty"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status    string `json:"status"`
	Calendars int    `json:"calendars"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Daycount API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testCalendars()
	tr.testKnownDates()
	tr.testConversions()
	tr.testRange()
	tr.testEaster()
	tr.testEdgeCases()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.get("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess(fmt.Sprintf("Health check passed (%d calendars)", health.Calendars))
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testCalendars() {
	tr.printSection("Calendars")

	var infos []api.CalendarInfo
	if err := tr.get("/api/v1/calendars", &infos); err != nil {
		tr.recordError("List", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Listed %d calendars", len(infos)))

	for _, info := range infos {
		var today api.DateInfo
		if err := tr.get("/api/v1/calendars/"+info.Key+"/today", &today); err != nil {
			tr.recordError(info.Key, err.Error())
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: today is %d-%02d-%02d (%s)",
			info.Key, today.Year, today.Month, today.Day, today.DayOfWeek))
		if tr.verbose {
			fmt.Printf("    family=%s epoch=%d years=[%d, %d]\n",
				info.Family, info.Epoch, info.MinYear, info.MaxYear)
		}
	}
}

// All of these are Monday 12 November 1945, day number 710346.
func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	testCases := []struct {
		calendar string
		date     string
	}{
		{"gregorian", "1945/11/12"},
		{"julian", "1945/10/30"},
		{"armenian", "1395/4/5"},
		{"coptic", "1662/3/3"},
		{"ethiopic", "1938/3/3"},
		{"persian", "1324/8/21"},
		{"tabular-islamic", "1364/12/6"},
		{"french-republican", "154/2/21"},
	}

	for _, tc := range testCases {
		var date api.DateInfo
		if err := tr.get(fmt.Sprintf("/api/v1/calendars/%s/dates/%s", tc.calendar, tc.date), &date); err != nil {
			tr.recordError(tc.calendar, err.Error())
			continue
		}

		if date.DayNumber == 710_346 && date.DayOfWeek == "Monday" {
			tr.recordSuccess(fmt.Sprintf("%s %s: day %d, %s", tc.calendar, tc.date, date.DayNumber, date.DayOfWeek))
		} else {
			tr.recordError(tc.calendar, fmt.Sprintf("Expected day 710346 (Monday), got %d (%s)",
				date.DayNumber, date.DayOfWeek))
		}
	}
}

func (tr *TestRunner) testConversions() {
	tr.printSection("Conversions")

	var conv api.ConversionInfo
	if err := tr.get("/api/v1/convert?from=gregorian&to=julian&year=2024&month=1&day=7", &conv); err != nil {
		tr.recordError("Convert", err.Error())
		return
	}
	if conv.To.Year == 2023 && conv.To.Month == 12 && conv.To.Day == 25 {
		tr.recordSuccess("Gregorian 2024-01-07 is Julian 2023-12-25")
	} else {
		tr.recordError("Convert", fmt.Sprintf("Expected 2023-12-25, got %d-%02d-%02d",
			conv.To.Year, conv.To.Month, conv.To.Day))
	}
}

func (tr *TestRunner) testRange() {
	tr.printSection("Range Tests")

	var dates []api.DateInfo
	if err := tr.get("/api/v1/calendars/gregorian/range?start=738944&end=738950", &dates); err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}
	if len(dates) == 7 {
		tr.recordSuccess(fmt.Sprintf("Week range returned %d days", len(dates)))
	} else {
		tr.recordError("Range (week)", fmt.Sprintf("Expected 7 days, got %d", len(dates)))
	}

	resp, err := tr.getRaw("/api/v1/calendars/gregorian/range?start=0&end=100000")
	if err == nil && resp.StatusCode == http.StatusBadRequest {
		tr.recordSuccess("Range limit enforced")
	} else {
		tr.recordError("Range limit", "Should reject long ranges")
	}
	closeBody(resp)
}

func (tr *TestRunner) testEaster() {
	tr.printSection("Easter")

	testCases := []struct {
		path string
		want string
	}{
		{"/api/v1/easter/2024", "2024-03-31"},
		{"/api/v1/easter/2025", "2025-04-20"},
		{"/api/v1/easter/2024?rule=julian", "2024-05-05"},
	}

	for _, tc := range testCases {
		var info api.EasterInfo
		if err := tr.get(tc.path, &info); err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}
		if info.Easter.Date == tc.want {
			tr.recordSuccess(fmt.Sprintf("%s: %s", tc.path, info.Easter.Date))
		} else {
			tr.recordError(tc.path, fmt.Sprintf("Expected %s, got %s", tc.want, info.Easter.Date))
		}
		if tr.verbose {
			fmt.Printf("    Ash Wednesday %s, Ascension %s, Pentecost %s\n",
				info.AshWednesday.Date, info.Ascension.Date, info.Pentecost.Date)
		}
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	testCases := []struct {
		path   string
		status int
		name   string
	}{
		{"/api/v1/calendars/gregorian/dates/2023/2/29", http.StatusBadRequest, "Invalid day rejected"},
		{"/api/v1/calendars/gregorian/dates/2023/feb/1", http.StatusBadRequest, "Non-numeric month rejected"},
		{"/api/v1/calendars/mayan", http.StatusNotFound, "Unknown calendar rejected"},
		{"/api/v1/easter/2024?rule=hebrew", http.StatusBadRequest, "Unknown Easter rule rejected"},
		{"/api/v1/calendars/gregorian/range?start=1", http.StatusBadRequest, "Missing end parameter rejected"},
	}

	for _, tc := range testCases {
		resp, err := tr.getRaw(tc.path)
		if err == nil && resp.StatusCode == tc.status {
			tr.recordSuccess(tc.name)
		} else {
			tr.recordError(tc.path, fmt.Sprintf("Expected HTTP %d", tc.status))
		}
		closeBody(resp)
	}

	var leap api.DateInfo
	if err := tr.get("/api/v1/calendars/gregorian/dates/2024/2/29", &leap); err != nil {
		tr.recordError("Leap day", err.Error())
	} else if leap.IsIntercalary {
		tr.recordSuccess("Leap day (2024-02-29) is intercalary")
	} else {
		tr.recordError("Leap day", "Expected 2024-02-29 to be intercalary")
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

// get fetches path and decodes the envelope's data into target.
func (tr *TestRunner) get(path string, target any) error {
	resp, err := tr.getRaw(path)
	if err != nil {
		return err
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

	if err := json.Unmarshal(apiResp.Data, target); err != nil {
		return fmt.Errorf("parse data: %w", err)
	}
	return nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func closeBody(resp *http.Response) {
	if resp != nil {
		resp.Body.Close()
	}
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
