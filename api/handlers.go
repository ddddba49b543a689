/*
handlers.go - HTTP API handlers for the absence dashboard

PURPOSE:
  Exposes the absence table and its derived views via REST. Handles HTTP
  request/response, JSON serialization, and delegates every transformation
  to the absence package.

ENDPOINTS:
  Table:
    GET    /api/absences            List all records (with day counts)
    POST   /api/absences            Add a record (form submission)
    GET    /api/absences/expanded   Expanded table (one row per day)

  Derived views:
    GET    /api/summary/sick        Sick-day summary with smileys
    GET    /api/summary/statistics  Monthly statistics rows
    GET    /api/reasons             Reason options for the form

  Charts (PNG):
    GET    /api/charts/reasons.png
    GET    /api/charts/weekdays.png
    GET    /api/charts/months.png
    GET    /api/charts/statistics.png
    GET    /api/charts/durations.png

  Exports:
    GET    /api/export/csv?from=&to=
    GET    /api/export/excel?from=&to=

  Scenarios (see scenarios.go):
    GET    /api/scenarios
    POST   /api/scenarios/load
    POST   /api/scenarios/reset

STATE:
  The handler keeps the whole table in memory and persists it to the CSV
  store after every mutation, before responding. Reads work on a snapshot
  taken under the lock.

ERROR HANDLING:
  Validation failures return 400 with the German message the dashboard
  shows verbatim. Everything else returns the JSON error envelope with an
  English message plus details.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fehlzeit/absence-board/absence"
	"github.com/fehlzeit/absence-board/charts"
	"github.com/fehlzeit/absence-board/export"
	"github.com/fehlzeit/absence-board/store/csvfile"
)

// successMessage confirms a stored absence; shown verbatim in the dashboard.
const successMessage = "Abwesenheit erfolgreich hinzugefügt!"

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the in-memory absence table and its persistence.
type Handler struct {
	Store  *csvfile.Store
	Logger *slog.Logger

	mu      sync.RWMutex
	records []absence.Record

	// Track currently loaded scenario (empty for organically entered data).
	currentScenario string
}

// NewHandler creates a handler and loads the table from the store.
func NewHandler(store *csvfile.Store, logger *slog.Logger) (*Handler, error) {
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load absence table: %w", err)
	}
	logger.Info("absence table loaded", "records", len(records), "path", store.Path())
	return &Handler{Store: store, Logger: logger, records: records}, nil
}

// snapshot returns a copy of the table for lock-free reads.
func (h *Handler) snapshot() []absence.Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]absence.Record, len(h.records))
	copy(out, h.records)
	return out
}

// =============================================================================
// TABLE HANDLERS
// =============================================================================

// ListAbsences returns all records.
func (h *Handler) ListAbsences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toAbsenceDTOs(h.snapshot()))
}

// CreateAbsence validates and stores one absence record.
func (h *Handler) CreateAbsence(w http.ResponseWriter, r *http.Request) {
	var req CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Name == "" || req.StartDate == "" || req.EndDate == "" || req.Reason == "" {
		writeError(w, http.StatusBadRequest, absence.ErrMissingFields.Error(), nil)
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid date: %s", req.StartDate), err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid date: %s", req.EndDate), err)
		return
	}

	reason := req.Reason
	if reason == absence.ReasonOther && req.OtherReason != "" {
		reason = req.OtherReason
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	employeeID, ok := absence.LookupEmployeeID(h.records, req.Name)
	if !ok {
		employeeID = "EMP-" + uuid.NewString()[:8]
	}

	record := absence.Record{
		EmployeeID: employeeID,
		Name:       req.Name,
		Start:      start,
		End:        end,
		Reason:     reason,
	}
	if err := record.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	updated := append(append([]absence.Record{}, h.records...), record)
	if err := h.Store.SaveAll(updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to persist absence", err)
		return
	}
	h.records = updated
	h.currentScenario = ""

	h.Logger.Info("absence added",
		"employee_id", record.EmployeeID,
		"reason", record.Reason,
		"days", record.Days(),
	)
	writeJSON(w, http.StatusCreated, CreateAbsenceResponse{
		Message:  successMessage,
		Absences: toAbsenceDTOs(updated),
	})
}

// ListExpanded returns the expanded table (one row per absent day).
func (h *Handler) ListExpanded(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toExpandedDTOs(absence.Expand(h.snapshot())))
}

// =============================================================================
// SUMMARY HANDLERS
// =============================================================================

// GetSickSummary returns the per-employee sick-day overview.
func (h *Handler) GetSickSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toSickSummaryDTOs(absence.SickSummary(h.snapshot())))
}

// GetStatistics returns the monthly statistics rows.
func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	rows := absence.Expand(h.snapshot())
	writeJSON(w, http.StatusOK, toMonthStatsDTOs(absence.MonthlyStatistics(rows)))
}

// ListReasons returns the selectable reason options.
func (h *Handler) ListReasons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, absence.Reasons())
}

// =============================================================================
// CHART HANDLERS
// =============================================================================

// ChartReasons renders the days-per-reason bar chart.
func (h *Handler) ChartReasons(w http.ResponseWriter, r *http.Request) {
	rows := absence.Expand(h.snapshot())
	h.renderChart(w, charts.Reasons(absence.CountByReason(rows)))
}

// ChartWeekdays renders the weekday/reason chart.
func (h *Handler) ChartWeekdays(w http.ResponseWriter, r *http.Request) {
	rows := absence.Expand(h.snapshot())
	h.renderChart(w, charts.Weekdays(absence.CountByWeekdayAndReason(rows)))
}

// ChartMonths renders the month/reason chart.
func (h *Handler) ChartMonths(w http.ResponseWriter, r *http.Request) {
	rows := absence.Expand(h.snapshot())
	h.renderChart(w, charts.Months(absence.CountByMonthAndReason(rows)))
}

// ChartStatistics renders the monthly statistics figure.
func (h *Handler) ChartStatistics(w http.ResponseWriter, r *http.Request) {
	rows := absence.Expand(h.snapshot())
	h.renderChart(w, charts.Statistics(absence.MonthlyStatistics(rows)))
}

// ChartDurations renders the absence-duration histogram.
func (h *Handler) ChartDurations(w http.ResponseWriter, r *http.Request) {
	h.renderChart(w, charts.Durations(absence.DurationHistogram(h.snapshot())))
}

func (h *Handler) renderChart(w http.ResponseWriter, c charts.Renderable) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := charts.Render(c, w); err != nil {
		h.Logger.Error("chart render failed", "error", err)
	}
}

// =============================================================================
// EXPORT HANDLERS
// =============================================================================

// ExportCSV streams the date-range filtered table as a CSV attachment.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filteredForExport(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="abwesenheitsaufzeichnungen.csv"`)
	if err := export.WriteCSV(w, filtered); err != nil {
		h.Logger.Error("csv export failed", "error", err)
	}
}

// ExportExcel streams the date-range filtered table as an xlsx attachment.
func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	filtered, ok := h.filteredForExport(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="abwesenheitsaufzeichnungen.xlsx"`)
	if err := export.WriteExcel(w, filtered); err != nil {
		h.Logger.Error("excel export failed", "error", err)
	}
}

// filteredForExport parses from/to and applies the range filter, writing the
// German validation message on failure.
func (h *Handler) filteredForExport(w http.ResponseWriter, r *http.Request) ([]absence.Record, bool) {
	from, to, err := parseRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return nil, false
	}

	filtered, err := absence.FilterRange(h.snapshot(), from, to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return nil, false
	}
	return filtered, true
}

// parseRange maps empty parameters to zero times so FilterRange reports the
// incomplete-range message instead of a parse error.
func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if fromStr != "" {
		if from, err = parseDate(fromStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("Invalid date: %s", fromStr)
		}
	}
	if toStr != "" {
		if to, err = parseDate(toStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("Invalid date: %s", toStr)
		}
	}
	return from, to, nil
}

// =============================================================================
// HELPERS
// =============================================================================

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return absence.Normalize(t), nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
