package service

import (
	"errors"
	"testing"

	"overtime-tracker/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportService_ExportHistory(t *testing.T) {
	stats, repo := setupTestStatsService(september(15))
	seedSeptember(t, repo)
	addWorked(t, repo, "2025-08-29", "19:00")

	svc := NewExportService(stats, clock.Fixed{At: september(15)}, quietLogger())

	buf, filename, err := svc.ExportHistory()
	require.NoError(t, err)
	assert.Equal(t, "overtime_20250915.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "2025-09", "2025-08"}, f.GetSheetList())

	month, _ := f.GetCellValue("Summary", "A2")
	total, _ := f.GetCellValue("Summary", "B2")
	days, _ := f.GetCellValue("Summary", "C2")
	assert.Equal(t, "2025-09", month)
	assert.Equal(t, "6.5", total)
	assert.Equal(t, "5", days)

	rows, err := f.GetRows("2025-09")
	require.NoError(t, err)
	// header, six records, blank, total, average
	require.Len(t, rows, 10)
	assert.Equal(t, []string{"2025-09-01", "18:00", "", "1"}, rows[1])
	assert.Equal(t, "yes", rows[6][2])
	assert.Equal(t, "Average", rows[9][0])
}

func TestExportService_ExportHistory_NoData(t *testing.T) {
	stats, _ := setupTestStatsService(september(15))
	svc := NewExportService(stats, clock.Fixed{At: september(15)}, quietLogger())

	_, _, err := svc.ExportHistory()
	assert.ErrorIs(t, err, ErrExportNoData)
}

func TestExportService_ExportHistory_StoreError(t *testing.T) {
	stats, repo := setupTestStatsService(september(15))
	storeErr := errors.New("database is locked")
	repo.err = storeErr
	svc := NewExportService(stats, clock.Fixed{At: september(15)}, quietLogger())

	_, _, err := svc.ExportHistory()
	assert.ErrorIs(t, err, storeErr)
}
