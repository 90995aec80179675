package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET /health
//	GET /api/v1/calendars
//	GET /api/v1/calendars/{key}
//	GET /api/v1/calendars/{key}/today
//	GET /api/v1/calendars/{key}/years/{year}
//	GET /api/v1/calendars/{key}/dates/{year}/{month}/{day}
//	GET /api/v1/calendars/{key}/ordinals/{year}/{dayOfYear}
//	GET /api/v1/calendars/{key}/days/{dayNumber}
//	GET /api/v1/calendars/{key}/range?start=&end=
//	GET /api/v1/convert?from=&to=&year=&month=&day=
//	GET /api/v1/easter/{year}?rule=
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	baseMiddleware := ChainMiddleware(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed)
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendars", handlers.ListCalendars)
		r.Route("/calendars/{key}", func(r chi.Router) {
			r.Get("/", handlers.GetCalendar)
			r.Get("/today", handlers.GetToday)
			r.Get("/years/{year}", handlers.GetYear)
			r.Get("/dates/{year}/{month}/{day}", handlers.GetDate)
			r.Get("/ordinals/{year}/{dayOfYear}", handlers.GetOrdinal)
			r.Get("/days/{dayNumber}", handlers.GetDay)
			r.Get("/range", handlers.GetRange)
		})
		r.Get("/convert", handlers.Convert)
		r.Get("/easter/{year}", handlers.GetEaster)
	})

	return baseMiddleware(r)
}
