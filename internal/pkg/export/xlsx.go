package export

import (
	"fmt"
	"io"

	"github.com/staffgate/attendance-gate-go/internal/domain/history"
	"github.com/xuri/excelize/v2"
)

var historyHeader = []interface{}{
	"Name", "Date", "Check-In Time", "Check-Out Time",
	"Total Work Hours", "Work in Minutes", "Remark", "Location",
}

// WriteHistoryXLSX renders filtered history rows as an .xlsx workbook.
func WriteHistoryXLSX(w io.Writer, sheetName string, rows []history.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheetName != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	if err := f.SetSheetRow(sheetName, "A1", &historyHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		values := []interface{}{
			row.Name, row.Date, row.CheckInTime, row.CheckOutTime,
			row.TotalWorkHours, row.WorkMinutes, row.Remark, row.Location,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
