package export_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/fehlzeit/absence-board/absence"
	"github.com/fehlzeit/absence-board/export"
)

func sampleRecords() []absence.Record {
	return []absence.Record{
		{
			EmployeeID: "EMP-12ab34cd",
			Name:       "Anna Bauer",
			Start:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
			Reason:     absence.ReasonSick,
		},
		{
			EmployeeID: "EMP-56ef78ab",
			Name:       "Ben Vogel",
			Start:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			Reason:     absence.ReasonVacation,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Mitarbeiter-ID;Name;Startdatum;Enddatum;Grund;Fehltage", lines[0])
	assert.Equal(t, "EMP-12ab34cd;Anna Bauer;2024-03-10;2024-03-14;Krank;5", lines[1])
	assert.Equal(t, "EMP-56ef78ab;Ben Vogel;2024-07-01;2024-07-01;Urlaub;1", lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, nil))
	assert.Equal(t, "Mitarbeiter-ID;Name;Startdatum;Enddatum;Grund;Fehltage", strings.TrimSpace(buf.String()))
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteExcel(&buf, sampleRecords()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), export.SheetName)

	get := func(cell string) string {
		v, err := f.GetCellValue(export.SheetName, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Mitarbeiter-ID", get("A1"))
	assert.Equal(t, "Fehltage", get("F1"))
	assert.Equal(t, "Anna Bauer", get("B2"))
	assert.Equal(t, "2024-03-10", get("C2"))
	assert.Equal(t, "Krank", get("E2"))
	assert.Equal(t, "5", get("F2"))
	assert.Equal(t, "Ben Vogel", get("B3"))
	assert.Equal(t, "1", get("F3"))
}
