/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. httplog:    Structured request logging (slog JSON)
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CleanPath:  Normalizes request paths
  5. CORS:       Cross-origin requests during frontend development

ROUTE GROUPS:
  /api/absences/*    Absence table
  /api/summary/*     Derived tables
  /api/charts/*      PNG figures
  /api/export/*      CSV and Excel downloads
  /api/scenarios/*   Demo data management
  /                  Embedded dashboard page

SECURITY NOTE:
  No authentication middleware. The dashboard is a single-user tool meant
  to run on localhost.

SEE ALSO:
  - handlers.go: Handler implementations
  - dashboard.go: Embedded frontend
  - cmd/server/main.go: Server startup
*/
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.CleanPath)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/absences", func(r chi.Router) {
			r.Get("/", h.ListAbsences)
			r.Post("/", h.CreateAbsence)
			r.Get("/expanded", h.ListExpanded)
		})

		r.Route("/summary", func(r chi.Router) {
			r.Get("/sick", h.GetSickSummary)
			r.Get("/statistics", h.GetStatistics)
		})

		r.Get("/reasons", h.ListReasons)

		r.Route("/charts", func(r chi.Router) {
			r.Get("/reasons.png", h.ChartReasons)
			r.Get("/weekdays.png", h.ChartWeekdays)
			r.Get("/months.png", h.ChartMonths)
			r.Get("/statistics.png", h.ChartStatistics)
			r.Get("/durations.png", h.ChartDurations)
		})

		r.Route("/export", func(r chi.Router) {
			r.Get("/csv", h.ExportCSV)
			r.Get("/excel", h.ExportExcel)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
			r.Post("/reset", h.ResetData)
		})
	})

	// Embedded dashboard page
	r.Get("/", h.Dashboard)

	return r
}
