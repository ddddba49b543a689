package csvfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fehlzeit/absence-board/absence"
	"github.com/fehlzeit/absence-board/store/csvfile"
)

func newTestStore(t *testing.T) *csvfile.Store {
	t.Helper()
	return csvfile.New(filepath.Join(t.TempDir(), "abwesenheitsaufzeichnungen.csv"))
}

func testRecord(name, reason string) absence.Record {
	return absence.Record{
		EmployeeID: "EMP-12ab34cd",
		Name:       name,
		Start:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		End:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		Reason:     reason,
	}
}

func TestLoad_MissingFile(t *testing.T) {
	store := newTestStore(t)

	records, err := store.Load()
	require.NoError(t, err, "a missing file is an empty table, not an error")
	assert.Empty(t, records)
}

func TestSaveAll_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	want := []absence.Record{
		testRecord("Anna Bauer", absence.ReasonSick),
		testRecord("Ben Vogel", absence.ReasonVacation),
	}

	require.NoError(t, store.SaveAll(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveAll_FileFormat(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveAll([]absence.Record{testRecord("Anna Bauer", absence.ReasonSick)}))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Mitarbeiter-ID;Name;Startdatum;Enddatum;Grund;Fehltage", lines[0])
	assert.Equal(t, "EMP-12ab34cd;Anna Bauer;2024-03-10;2024-03-14;Krank;5", lines[1])
}

func TestRoundTrip_SemicolonInField(t *testing.T) {
	store := newTestStore(t)
	want := testRecord("Anna Bauer", "Krank; ansteckend")
	require.NoError(t, store.SaveAll([]absence.Record{want}))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Krank; ansteckend", got[0].Reason)
}

func TestAppend(t *testing.T) {
	store := newTestStore(t)

	// First append creates the file.
	require.NoError(t, store.Append(testRecord("Anna Bauer", absence.ReasonSick)))
	require.NoError(t, store.Append(testRecord("Ben Vogel", absence.ReasonTraining)))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Anna Bauer", got[0].Name)
	assert.Equal(t, "Ben Vogel", got[1].Name)
}

func TestReset(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveAll([]absence.Record{testRecord("Anna Bauer", absence.ReasonSick)}))

	require.NoError(t, store.Reset())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	// The file stays behind with just the header.
	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "Mitarbeiter-ID;Name;Startdatum;Enddatum;Grund;Fehltage", strings.TrimSpace(string(raw)))
}

func TestLoad_ToleratesTimeComponent(t *testing.T) {
	store := newTestStore(t)
	raw := "Mitarbeiter-ID;Name;Startdatum;Enddatum;Grund;Fehltage\n" +
		"EMP-1;Anna;2024-03-10 00:00:00;2024-03-11 00:00:00;Krank;2\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0o644))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), got[0].Start)
	assert.Equal(t, 2, got[0].Days())
}

func TestLoad_BadDate(t *testing.T) {
	store := newTestStore(t)
	raw := "Mitarbeiter-ID;Name;Startdatum;Enddatum;Grund;Fehltage\n" +
		"EMP-1;Anna;gestern;2024-03-11;Krank;1\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(raw), 0o644))

	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestNoTempFilesLeftBehind(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.SaveAll([]absence.Record{testRecord("Anna Bauer", absence.ReasonSick)}))
	require.NoError(t, store.Reset())

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(store.Path()), entries[0].Name())
}
