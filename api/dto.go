/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures of the dashboard API. These types decouple
  the domain model from the wire format: dates travel as "2006-01-02"
  strings and decimal statistics as JSON numbers.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

SEE ALSO:
  - handlers.go: Uses these types
  - absence: the domain types these mirror
*/
package api

import (
	"github.com/fehlzeit/absence-board/absence"
)

const dateLayout = "2006-01-02"

// AbsenceDTO represents one absence record in API responses, including the
// derived day count.
type AbsenceDTO struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	AbsenceDays int    `json:"absence_days"`
}

// CreateAbsenceRequest is the add-absence form payload. OtherReason is only
// consulted when Reason is "Andere".
type CreateAbsenceRequest struct {
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Reason      string `json:"reason"`
	OtherReason string `json:"other_reason,omitempty"`
}

// CreateAbsenceResponse carries the user-facing confirmation message and
// the refreshed table.
type CreateAbsenceResponse struct {
	Message  string       `json:"message"`
	Absences []AbsenceDTO `json:"absences"`
}

// ExpandedRowDTO is one day of one absence in the expanded table.
type ExpandedRowDTO struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
	Weekday    string `json:"weekday"`
	Month      string `json:"month"`
}

// SickSummaryDTO is one row of the sick-day overview table.
type SickSummaryDTO struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	SickDays   int    `json:"sick_days"`
	Smiley     string `json:"smiley"`
}

// MonthStatsDTO is one row of the monthly statistics table.
type MonthStatsDTO struct {
	Month           string  `json:"month"`
	Mean            float64 `json:"mean"`
	Std             float64 `json:"std"`
	Max             int     `json:"max"`
	Min             int     `json:"min"`
	DaysWithAbsence int     `json:"days_with_absence"`
	TotalDays       int     `json:"total_days"`
	Quota           float64 `json:"quota"`
}

// ScenarioDTO describes one loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// LoadScenarioRequest selects the scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toAbsenceDTO(r absence.Record) AbsenceDTO {
	return AbsenceDTO{
		EmployeeID:  r.EmployeeID,
		Name:        r.Name,
		StartDate:   r.Start.Format(dateLayout),
		EndDate:     r.End.Format(dateLayout),
		Reason:      r.Reason,
		AbsenceDays: r.Days(),
	}
}

func toAbsenceDTOs(records []absence.Record) []AbsenceDTO {
	dtos := make([]AbsenceDTO, len(records))
	for i, r := range records {
		dtos[i] = toAbsenceDTO(r)
	}
	return dtos
}

func toExpandedDTOs(rows []absence.DayRow) []ExpandedRowDTO {
	dtos := make([]ExpandedRowDTO, len(rows))
	for i, r := range rows {
		dtos[i] = ExpandedRowDTO{
			EmployeeID: r.EmployeeID,
			Name:       r.Name,
			Date:       r.Date.Format(dateLayout),
			Reason:     r.Reason,
			Weekday:    r.Weekday,
			Month:      r.Month,
		}
	}
	return dtos
}

func toSickSummaryDTOs(rows []absence.SickSummaryRow) []SickSummaryDTO {
	dtos := make([]SickSummaryDTO, len(rows))
	for i, r := range rows {
		dtos[i] = SickSummaryDTO{
			EmployeeID: r.EmployeeID,
			Name:       r.Name,
			SickDays:   r.SickDays,
			Smiley:     r.Smiley,
		}
	}
	return dtos
}

func toMonthStatsDTOs(stats []absence.MonthStats) []MonthStatsDTO {
	dtos := make([]MonthStatsDTO, len(stats))
	for i, s := range stats {
		dtos[i] = MonthStatsDTO{
			Month:           s.Month,
			Mean:            s.Mean.InexactFloat64(),
			Std:             s.Std,
			Max:             s.Max,
			Min:             s.Min,
			DaysWithAbsence: s.DaysWithAbsence,
			TotalDays:       s.TotalDays,
			Quota:           s.Quota.InexactFloat64(),
		}
	}
	return dtos
}
