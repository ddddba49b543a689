/*
Package export renders filtered absence records as downloadable files.

PURPOSE:
  Builds the CSV and Excel payloads for the dashboard's export buttons.
  Range filtering and its validation happen in the absence package; this
  package only serializes the already-filtered records.

FORMATS:
  CSV    ';'-separated, same schema as the persistence file
  Excel  one sheet "Abwesenheiten", bold blue header row, sized columns

SEE ALSO:
  - absence/filter.go: FilterRange and the German validation messages
  - store/csvfile: the on-disk schema the CSV export mirrors
*/
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/fehlzeit/absence-board/absence"
)

const dateLayout = "2006-01-02"

// SheetName is the Excel worksheet name.
const SheetName = "Abwesenheiten"

var columns = []string{"Mitarbeiter-ID", "Name", "Startdatum", "Enddatum", "Grund", "Fehltage"}

// WriteCSV writes records as ';'-separated CSV with a header row.
func WriteCSV(w io.Writer, records []absence.Record) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.EmployeeID,
			r.Name,
			r.Start.Format(dateLayout),
			r.End.Format(dateLayout),
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

// WriteExcel writes records as an xlsx workbook with a styled header row.
func WriteExcel(w io.Writer, records []absence.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#0056B3"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(SheetName, cell, col)
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	f.SetCellStyle(SheetName, "A1", last, headerStyle)
	f.SetRowHeight(SheetName, 1, 22)

	for i, r := range records {
		row := i + 2
		f.SetCellValue(SheetName, cellRef(1, row), r.EmployeeID)
		f.SetCellValue(SheetName, cellRef(2, row), r.Name)
		f.SetCellValue(SheetName, cellRef(3, row), r.Start.Format(dateLayout))
		f.SetCellValue(SheetName, cellRef(4, row), r.End.Format(dateLayout))
		f.SetCellValue(SheetName, cellRef(5, row), r.Reason)
		f.SetCellValue(SheetName, cellRef(6, row), r.Days())
	}

	f.SetColWidth(SheetName, "A", "B", 18)
	f.SetColWidth(SheetName, "C", "D", 14)
	f.SetColWidth(SheetName, "E", "E", 22)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func cellRef(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}
