/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:
  Provides pre-built datasets that populate the absence table with
  realistic data for demos. Loading a scenario replaces the whole table
  and persists it, so the dashboard shows the scenario immediately.

AVAILABLE SCENARIOS:
  demo-year:   50 employees, a generated year of vacations and short
               absences (see absence.SeedYear)
  small-team:  five hand-written records covering every chart and the
               smiley thresholds

HOW SCENARIOS WORK:
 1. Build the record set
 2. Replace the in-memory table
 3. Persist to the CSV store
 4. Remember the scenario id for GET /api/scenarios

NOTE:
  Scenarios overwrite the CSV file. Only use in development/demo
  environments.

SEE ALSO:
  - handlers.go: Table state the loaders replace
  - absence/seed.go: The generated-year dataset
*/
package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/fehlzeit/absence-board/absence"
)

type scenario struct {
	ID          string
	Name        string
	Description string
	Build       func() []absence.Record
}

var scenarios = []scenario{
	{
		ID:          "demo-year",
		Name:        "Demo-Jahr",
		Description: "50 Mitarbeiter mit Urlaub und kurzen Abwesenheiten über ein Jahr",
		Build: func() []absence.Record {
			rng := rand.New(rand.NewSource(2024))
			return absence.SeedYear(rng, time.Now().Year()-1, 50)
		},
	},
	{
		ID:          "small-team",
		Name:        "Kleines Team",
		Description: "Fünf Einträge eines kleinen Teams, alle Diagramme belegt",
		Build:       smallTeamRecords,
	},
}

func smallTeamRecords() []absence.Record {
	day := func(m time.Month, d int) time.Time {
		return time.Date(time.Now().Year()-1, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []absence.Record{
		{EmployeeID: "EMP-a1b2c3d4", Name: "Helena Berg", Start: day(time.February, 3), End: day(time.February, 14), Reason: absence.ReasonVacation},
		{EmployeeID: "EMP-a1b2c3d4", Name: "Helena Berg", Start: day(time.March, 10), End: day(time.March, 21), Reason: absence.ReasonSick},
		{EmployeeID: "EMP-e5f6a7b8", Name: "Katja Eppler", Start: day(time.June, 2), End: day(time.June, 6), Reason: absence.ReasonTraining},
		{EmployeeID: "EMP-e5f6a7b8", Name: "Katja Eppler", Start: day(time.August, 18), End: day(time.August, 22), Reason: absence.ReasonSick},
		{EmployeeID: "EMP-c9d0e1f2", Name: "Jonas Weber", Start: day(time.November, 24), End: day(time.November, 24), Reason: absence.ReasonPersonal},
	}
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns the loadable demo scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	current := h.currentScenario
	h.mu.RUnlock()

	dtos := make([]ScenarioDTO, len(scenarios))
	for i, s := range scenarios {
		dtos[i] = ScenarioDTO{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Active:      s.ID == current,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// LoadScenario replaces the table with a demo dataset.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var selected *scenario
	for i := range scenarios {
		if scenarios[i].ID == req.ScenarioID {
			selected = &scenarios[i]
			break
		}
	}
	if selected == nil {
		writeError(w, http.StatusNotFound, "Unknown scenario: "+req.ScenarioID, nil)
		return
	}

	records := selected.Build()

	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Store.SaveAll(records); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to persist scenario", err)
		return
	}
	h.records = records
	h.currentScenario = selected.ID

	h.Logger.Info("scenario loaded", "scenario", selected.ID, "records", len(records))
	writeJSON(w, http.StatusOK, map[string]any{
		"scenario_id": selected.ID,
		"records":     len(records),
	})
}

// ResetData clears the table and the CSV file.
func (h *Handler) ResetData(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.Store.Reset(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset data", err)
		return
	}
	h.records = nil
	h.currentScenario = ""

	h.Logger.Info("absence table reset")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}
