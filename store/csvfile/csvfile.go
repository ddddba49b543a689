/*
Package csvfile persists the absence table as a semicolon-delimited CSV file.

PURPOSE:
  The CSV file is the system of record. It is loaded once at startup into
  the in-memory table and rewritten in full after every mutation, so the
  file and the table never drift while the server runs.

FILE FORMAT:
  Header + one row per record, ';'-separated:

    Mitarbeiter-ID;Name;Startdatum;Enddatum;Grund;Fehltage

  Dates are "2006-01-02". Fehltage is written for human readers but always
  recomputed on load. Fields containing ';' survive the round trip via
  standard CSV quoting.

MISSING FILE:
  A missing file loads as an empty table, not an error. The file appears on
  the first write.

ATOMIC WRITES:
  Saves encode into a temp file in the target directory and rename it over
  the target, so a crash mid-write never leaves a truncated table behind.

CONCURRENCY:
  A sync.RWMutex serializes access. The dashboard is single-user, but the
  HTTP server still runs handlers on concurrent goroutines.

USAGE:
  store := csvfile.New("./abwesenheitsaufzeichnungen.csv")
  records, err := store.Load()
  ...
  err = store.Append(record)
*/
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/fehlzeit/absence-board/absence"
)

// DateLayout is the on-disk date format.
const DateLayout = "2006-01-02"

var header = []string{"Mitarbeiter-ID", "Name", "Startdatum", "Enddatum", "Grund", "Fehltage"}

// Store reads and writes the absence CSV file.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a store for the given CSV path. The file is not touched until
// the first Load or write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the CSV file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads all records from the file. A missing file yields an empty
// table. Dates are normalized to midnight UTC; the stored Fehltage column
// is ignored and recomputed by callers via Record.Days.
func (s *Store) Load() ([]absence.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	return decode(f)
}

// SaveAll replaces the file contents with the given records.
func (s *Store) SaveAll(records []absence.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAll(records)
}

// Append adds one record and persists the whole table.
func (s *Store) Append(record absence.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	var records []absence.Record
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First record ever.
	case err != nil:
		return fmt.Errorf("open %s: %w", s.path, err)
	default:
		records, err = decode(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	return s.writeAll(append(records, record))
}

// Reset removes every record. The file stays behind with only the header.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAll(nil)
}

// writeAll encodes records to a temp file and renames it over the target.
// Caller must hold the write lock.
func (s *Store) writeAll(records []absence.Record) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp, records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func encode(w io.Writer, records []absence.Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.EmployeeID,
			r.Name,
			r.Start.Format(DateLayout),
			r.End.Format(DateLayout),
			r.Reason,
			strconv.Itoa(r.Days()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func decode(r io.Reader) ([]absence.Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []absence.Record
	for i, row := range rows[1:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("row %d: expected at least 5 fields, got %d", i+2, len(row))
		}
		start, err := parseDate(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: start date: %w", i+2, err)
		}
		end, err := parseDate(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: end date: %w", i+2, err)
		}
		records = append(records, absence.Record{
			EmployeeID: row[0],
			Name:       row[1],
			Start:      start,
			End:        end,
			Reason:     row[4],
		})
	}
	return records, nil
}

// parseDate accepts the date layout, tolerating a trailing time component
// left behind by other tools.
func parseDate(s string) (time.Time, error) {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return absence.Normalize(t), nil
}
