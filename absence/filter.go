/*
filter.go - Date-range filtering for exports

PURPOSE:
  Selects the records fully contained in a [from, to] interval for the CSV
  and Excel downloads. Only records whose whole absence lies inside the
  range are exported; a record straddling the boundary is excluded rather
  than truncated.

ERRORS:
  The three failure modes carry the exact messages the dashboard shows next
  to the export buttons, so handlers can return err.Error() verbatim.
*/
package absence

import (
	"errors"
	"time"
)

var (
	// ErrRangeIncomplete is returned when either end of the export range is unset.
	ErrRangeIncomplete = errors.New("Bitte wählen Sie ein Start- und Enddatum aus.")

	// ErrRangeInverted is returned when the range start lies after the range end.
	ErrRangeInverted = errors.New("Das Startdatum darf nicht nach dem Enddatum liegen!")

	// ErrRangeEmpty is returned when no record falls inside the range.
	ErrRangeEmpty = errors.New("Keine Daten im ausgewählten Zeitraum gefunden!")
)

// FilterRange returns the records with Start >= from and End <= to.
func FilterRange(records []Record, from, to time.Time) ([]Record, error) {
	if from.IsZero() || to.IsZero() {
		return nil, ErrRangeIncomplete
	}
	if from.After(to) {
		return nil, ErrRangeInverted
	}

	var out []Record
	for _, r := range records {
		if !r.Start.Before(from) && !r.End.After(to) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, ErrRangeEmpty
	}
	return out, nil
}
