package export

import (
	"bytes"
	"testing"

	"github.com/staffgate/attendance-gate-go/internal/domain/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteHistoryXLSX(t *testing.T) {
	rows := []history.Row{
		{
			Name:           "Jane Tan",
			Date:           "2025-04-26",
			CheckInTime:    "09:00:00",
			CheckOutTime:   "18:00:00",
			TotalWorkHours: "8.00",
			WorkMinutes:    "480",
			Remark:         "Used GPS",
			Location:       "Latitude: 3.1925444, Longitude: 101.6110718",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistoryXLSX(&buf, "2025-04", rows))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"2025-04"}, f.GetSheetList())

	got, err := f.GetRows("2025-04")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Name", got[0][0])
	assert.Equal(t, "Jane Tan", got[1][0])
	assert.Equal(t, "480", got[1][5])
}

func TestWriteHistoryXLSX_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistoryXLSX(&buf, "2025-05", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("2025-05")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
