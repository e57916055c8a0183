package service

import (
	"bytes"
	"fmt"

	"overtime-tracker/internal/models"
	"overtime-tracker/pkg/clock"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

type ExportService struct {
	stats  *StatisticsService
	clock  clock.Clock
	logger *logrus.Logger
}

func NewExportService(stats *StatisticsService, clk clock.Clock, logger *logrus.Logger) *ExportService {
	return &ExportService{stats: stats, clock: clk, logger: logger}
}

// ExportHistory builds a workbook with a summary sheet and one sheet per month.
// It returns the file contents and a suggested filename.
func (s *ExportService) ExportHistory() (*bytes.Buffer, string, error) {
	history, err := s.stats.History()
	if err != nil {
		return nil, "", err
	}
	if len(history) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	writeRow(f, summarySheet, 1, "Month", "Total overtime (h)", "Days worked", "Average (h)")
	f.SetCellStyle(summarySheet, "A1", "D1", headerStyle)
	f.SetColWidth(summarySheet, "A", "A", 10)
	f.SetColWidth(summarySheet, "B", "D", 18)

	for i, m := range history {
		name := monthKey(m)
		writeRow(f, summarySheet, i+2, name, m.TotalOvertime, m.WorkDayCount, m.AverageOvertime)

		if err := writeMonthSheet(f, name, m, headerStyle); err != nil {
			return nil, "", err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.WithError(err).Error("Failed to write workbook")
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"months": len(history),
		"bytes":  buf.Len(),
	}).Info("History exported")

	filename := fmt.Sprintf("overtime_%s.xlsx", s.clock.Now().Format("20060102"))
	return buf, filename, nil
}

func writeMonthSheet(f *excelize.File, name string, m *models.MonthlyStatistics, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	writeRow(f, name, 1, "Date", "Clock-out", "Leave", "Overtime (h)")
	f.SetCellStyle(name, "A1", "D1", headerStyle)
	f.SetColWidth(name, "A", "A", 12)
	f.SetColWidth(name, "B", "D", 14)

	row := 2
	for _, r := range m.Records {
		leave := ""
		if r.IsLeave {
			leave = "yes"
		}
		writeRow(f, name, row, r.Date, r.ClockOutValue(), leave, r.OvertimeHours)
		row++
	}

	writeRow(f, name, row+1, "Total", "", "", m.TotalOvertime)
	writeRow(f, name, row+2, "Average", "", "", m.AverageOvertime)
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, v)
	}
}

func monthKey(m *models.MonthlyStatistics) string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}
