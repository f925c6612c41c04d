package report

import (
	"bytes"
	"time"

	"uni3_backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

// AttendanceSheet is the worksheet name used by AttendanceWorkbook
const AttendanceSheet = "Asistencia"

// XLSXContentType is the MIME type of the generated workbook
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var attendanceHeader = []any{"attendance_id", "user_id", "latitude", "longitude", "address", "registered_at"}

// AttendanceWorkbook renders records, in the order given, into a single-sheet xlsx file
func AttendanceWorkbook(records []domain.Attendance) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", AttendanceSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(AttendanceSheet, "A1", &attendanceHeader); err != nil {
		return nil, err
	}
	for i, a := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{a.ID, a.UserID, a.Latitude, a.Longitude, a.Address, a.RegisteredAt.UTC().Format(time.RFC3339)}
		if err := f.SetSheetRow(AttendanceSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f.WriteToBuffer()
}
