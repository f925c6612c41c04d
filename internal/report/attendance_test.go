package report

import (
	"testing"
	"time"

	"uni3_backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAttendanceWorkbook(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	buf, err := AttendanceWorkbook([]domain.Attendance{
		{ID: 2, UserID: 3, Latitude: 19.5, Longitude: -99.25, Address: "Calle Falsa 123", RegisteredAt: at},
		{ID: 1, UserID: 1, Latitude: 1, Longitude: 2, Address: "Dirección no disponible", RegisteredAt: at.Add(-time.Hour)},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(AttendanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"attendance_id", "user_id", "latitude", "longitude", "address", "registered_at"}, rows[0])
	assert.Equal(t, []string{"2", "3", "19.5", "-99.25", "Calle Falsa 123", "2024-05-01T08:30:00Z"}, rows[1])
	assert.Equal(t, "Dirección no disponible", rows[2][4])
}

func TestAttendanceWorkbook_Empty(t *testing.T) {
	buf, err := AttendanceWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(AttendanceSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
