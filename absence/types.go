/*
types.go - Core domain types for absence tracking

PURPOSE:
  Defines the absence record, the fixed reason catalog, and the German
  calendar labels every grouping and chart in the dashboard is keyed on.
  All derived views (expanded table, summaries, statistics) are computed
  from []Record; there is no other source of truth.

DATA MODEL:
  Record:
    EmployeeID  "EMP-" + 8 hex chars for newly seen names, stable per name
    Name        display name, used for employee-id reuse on exact match
    Start, End  inclusive calendar days, normalized to midnight UTC
    Reason      one of the catalog reasons or a free-text "other" reason

  Days() is always derived, never stored authoritatively: the CSV file
  carries a Fehltage column for human readers, but loading recomputes it.

LANGUAGE:
  User-facing vocabulary (reasons, weekday and month labels, validation
  messages) is German to match the dashboard audience. Identifiers stay
  English.

SEE ALSO:
  - expand.go: date-range expansion into daily rows
  - summary.go: sick-day summary with smiley classification
  - stats.go: monthly statistics over the expanded calendar
*/
package absence

import (
	"errors"
	"time"
)

// =============================================================================
// REASON CATALOG
// =============================================================================

// Fixed reason options offered by the dashboard form. ReasonOther is a
// sentinel choice that substitutes a caller-provided free-text reason.
const (
	ReasonSick     = "Krank"
	ReasonVacation = "Urlaub"
	ReasonPersonal = "Persönliche Gründe"
	ReasonTraining = "Fortbildung"
	ReasonOther    = "Andere"
)

// Reasons lists the selectable reason options in form order, ReasonOther last.
func Reasons() []string {
	return []string{ReasonSick, ReasonVacation, ReasonPersonal, ReasonTraining, ReasonOther}
}

// =============================================================================
// CALENDAR LABELS
// =============================================================================

// Weekdays holds the German weekday labels, Monday first. Chart ordering
// follows this slice, not time.Weekday (which starts on Sunday).
var Weekdays = []string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"}

// Months holds the German month labels in calendar order.
var Months = []string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// WeekdayLabel returns the German label for t's weekday.
func WeekdayLabel(t time.Time) string {
	// time.Weekday is Sunday=0; shift to Monday=0.
	return Weekdays[(int(t.Weekday())+6)%7]
}

// MonthLabel returns the German label for t's month.
func MonthLabel(t time.Time) string {
	return Months[int(t.Month())-1]
}

// WeekdayIndex returns the position of a German weekday label in Weekdays,
// or -1 for unknown labels.
func WeekdayIndex(label string) int {
	for i, w := range Weekdays {
		if w == label {
			return i
		}
	}
	return -1
}

// MonthIndex returns the position of a German month label in Months,
// or -1 for unknown labels.
func MonthIndex(label string) int {
	for i, m := range Months {
		if m == label {
			return i
		}
	}
	return -1
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one absence entry: an employee away from Start through End
// (both inclusive) for a reason.
type Record struct {
	EmployeeID string
	Name       string
	Start      time.Time
	End        time.Time
	Reason     string
}

// Days returns the inclusive day count of the absence. A same-day absence
// counts as one day. Records with a zero Start or End count as zero.
func (r Record) Days() int {
	if r.Start.IsZero() || r.End.IsZero() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Normalize truncates Start and End to midnight UTC. Date arithmetic in
// Days and Expand assumes normalized inputs.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LookupEmployeeID returns the employee id of the first record with an
// exactly matching name. The dashboard reuses ids per name so repeated
// entries for one person aggregate in the summaries.
func LookupEmployeeID(records []Record, name string) (string, bool) {
	for _, r := range records {
		if r.Name == name {
			return r.EmployeeID, true
		}
	}
	return "", false
}

// =============================================================================
// VALIDATION
// =============================================================================

// Sentinel validation errors. The message texts are user-facing and shown
// verbatim in the dashboard, so they are German.
var (
	// ErrMissingFields is returned when the add-absence form is submitted
	// with any required field empty.
	ErrMissingFields = errors.New("Alle Felder müssen ausgefüllt werden!")

	// ErrStartAfterEnd is returned when the start date lies after the end date.
	ErrStartAfterEnd = errors.New("Das Startdatum darf nicht nach dem Enddatum liegen!")
)

// Validate checks a record before it enters the table.
func (r Record) Validate() error {
	if r.Name == "" || r.Reason == "" || r.Start.IsZero() || r.End.IsZero() {
		return ErrMissingFields
	}
	if r.Start.After(r.End) {
		return ErrStartAfterEnd
	}
	return nil
}
