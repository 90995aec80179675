package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/daycount/internal/calendar"
	"github.com/zapponejosh/daycount/internal/config"
	"github.com/zapponejosh/daycount/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	catalog *calendar.Catalog
	cfg     *config.Config
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(catalog *calendar.Catalog, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		catalog: catalog,
		cfg:     cfg,
		logger:  logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]any{
		"status":    "healthy",
		"calendars": h.catalog.Len(),
	})
}

// ListCalendars handles GET /api/v1/calendars
func (h *Handlers) ListCalendars(w http.ResponseWriter, r *http.Request) {
	all := h.catalog.All()
	infos := make([]CalendarInfo, 0, len(all))
	for _, cal := range all {
		infos = append(infos, newCalendarInfo(cal))
	}
	WriteSuccess(w, infos)
}

// GetCalendar handles GET /api/v1/calendars/{key}
func (h *Handlers) GetCalendar(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, newCalendarInfo(cal))
}

// GetToday handles GET /api/v1/calendars/{key}/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}

	date, err := calendar.DateFromDayNumber(cal, calendar.Today().DayNumber())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, newDateInfo(date))
}

// GetYear handles GET /api/v1/calendars/{key}/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}
	year, ok := int32Param(w, chi.URLParam(r, "year"), "year")
	if !ok {
		return
	}

	if err := cal.ValidateYear(year); err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, newYearInfo(cal, year))
}

// GetDate handles GET /api/v1/calendars/{key}/dates/{year}/{month}/{day}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}
	year, ok := int32Param(w, chi.URLParam(r, "year"), "year")
	if !ok {
		return
	}
	month, ok := int32Param(w, chi.URLParam(r, "month"), "month")
	if !ok {
		return
	}
	day, ok := int32Param(w, chi.URLParam(r, "day"), "day")
	if !ok {
		return
	}

	date, err := calendar.NewDate(cal, year, month, day)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, newDateInfo(date))
}

// GetOrdinal handles GET /api/v1/calendars/{key}/ordinals/{year}/{dayOfYear}
func (h *Handlers) GetOrdinal(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}
	year, ok := int32Param(w, chi.URLParam(r, "year"), "year")
	if !ok {
		return
	}
	doy, ok := int32Param(w, chi.URLParam(r, "dayOfYear"), "day of year")
	if !ok {
		return
	}

	date, err := calendar.NewOrdinalDate(cal, year, doy)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, newDateInfo(date))
}

// GetDay handles GET /api/v1/calendars/{key}/days/{dayNumber}
func (h *Handlers) GetDay(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}
	dn, ok := int32Param(w, chi.URLParam(r, "dayNumber"), "day number")
	if !ok {
		return
	}

	date, err := calendar.DateFromDayNumber(cal, calendar.DayNumber(dn))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, newDateInfo(date))
}

// GetRange handles GET /api/v1/calendars/{key}/range?start=N&end=N
//
// Both bounds are day numbers and are inclusive.
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	cal, ok := h.calendarParam(w, r)
	if !ok {
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end day numbers are required")
		return
	}
	start, ok := int32Param(w, startStr, "start")
	if !ok {
		return
	}
	end, ok := int32Param(w, endStr, "end")
	if !ok {
		return
	}

	if start > end {
		WriteBadRequest(w, "Start must be before or equal to end")
		return
	}
	if span := int64(end) - int64(start) + 1; span > int64(h.cfg.MaxRangeDays) {
		logger.Debug(r.Context(), "range rejected",
			slog.Int64("days", span),
			slog.Int("max_days", h.cfg.MaxRangeDays),
		)
		WriteBadRequest(w, fmt.Sprintf("Range cannot exceed %d days", h.cfg.MaxRangeDays))
		return
	}

	first, err := calendar.DateFromDayNumber(cal, calendar.DayNumber(start))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := cal.ValidateDayNumber(calendar.DayNumber(end)); err != nil {
		h.writeError(w, r, err)
		return
	}

	dates := make([]DateInfo, 0, end-start+1)
	for i := int32(0); i <= end-start; i++ {
		date, err := first.AddDays(i)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		dates = append(dates, newDateInfo(date))
	}
	WriteSuccess(w, dates)
}

// Convert handles GET /api/v1/convert?from=&to=&year=&month=&day=
//
// from defaults to the configured default calendar.
func (h *Handlers) Convert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	fromKey := q.Get("from")
	if fromKey == "" {
		fromKey = h.cfg.DefaultCalendar
	}
	toKey := q.Get("to")
	if toKey == "" {
		WriteBadRequest(w, "Target calendar parameter 'to' is required")
		return
	}

	from, err := h.catalog.Get(fromKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	to, err := h.catalog.Get(toKey)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	year, ok := int32Param(w, q.Get("year"), "year")
	if !ok {
		return
	}
	month, ok := int32Param(w, q.Get("month"), "month")
	if !ok {
		return
	}
	day, ok := int32Param(w, q.Get("day"), "day")
	if !ok {
		return
	}

	src, err := calendar.NewDate(from, year, month, day)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dst, err := src.WithCalendar(to)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	WriteSuccess(w, ConversionInfo{From: newDateInfo(src), To: newDateInfo(dst)})
}

// GetEaster handles GET /api/v1/easter/{year}?rule=gregorian|julian
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	year, ok := int32Param(w, chi.URLParam(r, "year"), "year")
	if !ok {
		return
	}
	rule := r.URL.Query().Get("rule")
	if rule == "" {
		rule = calendar.RuleGregorian
	}

	easter, err := calendar.EasterRule(rule, year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	info, err := newEasterInfo(year, rule, easter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, info)
}

// calendarParam resolves the {key} URL parameter, writing a 404 when the
// calendar is unknown.
func (h *Handlers) calendarParam(w http.ResponseWriter, r *http.Request) (*calendar.Calendar, bool) {
	cal, err := h.catalog.Get(chi.URLParam(r, "key"))
	if err != nil {
		h.writeError(w, r, err)
		return nil, false
	}
	return cal, true
}

// writeError maps calendar errors to HTTP responses.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var rangeErr *calendar.RangeError
	switch {
	case errors.Is(err, calendar.ErrCalendarNotFound):
		WriteNotFound(w, err.Error())
	case errors.As(err, &rangeErr):
		WriteOutOfRange(w, err.Error())
	case errors.Is(err, calendar.ErrUnknownRule):
		WriteBadRequest(w, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
			slog.String("request_id", logger.RequestID(r.Context())),
		)
		WriteInternalError(w, "Internal server error")
	}
}

// int32Param parses a decimal integer parameter, writing a 400 on failure.
func int32Param(w http.ResponseWriter, value, name string) (int32, bool) {
	if value == "" {
		WriteBadRequest(w, fmt.Sprintf("Parameter %q is required", name))
		return 0, false
	}
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q", name, value))
		return 0, false
	}
	return int32(n), true
}
