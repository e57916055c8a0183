package service

import (
	"io"
	"sort"
	"strings"
	"time"

	"overtime-tracker/internal/models"
	"overtime-tracker/pkg/dateutil"

	"github.com/sirupsen/logrus"
)

// ── in-memory work record repository ──

type mockWorkRecordRepo struct {
	records map[string]*models.WorkRecord
	err     error
}

func newMockWorkRecordRepo() *mockWorkRecordRepo {
	return &mockWorkRecordRepo{records: make(map[string]*models.WorkRecord)}
}

func (m *mockWorkRecordRepo) Upsert(record *models.WorkRecord) error {
	if m.err != nil {
		return m.err
	}
	cp := *record
	m.records[record.Date] = &cp
	return nil
}

func (m *mockWorkRecordRepo) Update(record *models.WorkRecord) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.records[record.Date]; !ok {
		return false, nil
	}
	cp := *record
	m.records[record.Date] = &cp
	return true, nil
}

func (m *mockWorkRecordRepo) GetByDate(date string) (*models.WorkRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records[date], nil
}

func (m *mockWorkRecordRepo) Delete(date string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.records[date]; !ok {
		return false, nil
	}
	delete(m.records, date)
	return true, nil
}

func (m *mockWorkRecordRepo) ListByMonth(year, month int) ([]*models.WorkRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	prefix := dateutil.MonthPrefix(year, time.Month(month))
	var out []*models.WorkRecord
	for date, r := range m.records {
		if strings.HasPrefix(date, prefix) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *mockWorkRecordRepo) ListDistinctMonths() ([]models.YearMonth, error) {
	if m.err != nil {
		return nil, m.err
	}
	seen := make(map[models.YearMonth]bool)
	var out []models.YearMonth
	for _, r := range m.records {
		day, _ := dateutil.ParseDate(r.Date)
		ym := models.YearMonth{Year: day.Year(), Month: int(day.Month())}
		if !seen[ym] {
			seen[ym] = true
			out = append(out, ym)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

// ── in-memory non-working day repository ──

type mockNonWorkingDayRepo struct {
	years map[int]*models.CalendarYear
	days  map[string]models.NonWorkingDay
	err   error
}

func newMockNonWorkingDayRepo() *mockNonWorkingDayRepo {
	return &mockNonWorkingDayRepo{
		years: make(map[int]*models.CalendarYear),
		days:  make(map[string]models.NonWorkingDay),
	}
}

func (m *mockNonWorkingDayRepo) GetByYearMonth(year, month int) ([]models.NonWorkingDay, error) {
	var out []models.NonWorkingDay
	for _, d := range m.days {
		if d.Year == year && d.Month == month {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *mockNonWorkingDayRepo) IsNonWorkingDay(date time.Time) (bool, error) {
	_, ok := m.days[dateutil.FormatDate(date)]
	return ok, nil
}

func (m *mockNonWorkingDayRepo) ReplaceYear(year *models.CalendarYear, days []models.NonWorkingDay) error {
	if m.err != nil {
		return m.err
	}
	for key, d := range m.days {
		if d.Year == year.Year {
			delete(m.days, key)
		}
	}
	for _, d := range days {
		m.days[d.Date] = d
	}
	m.years[year.Year] = year
	return nil
}

func (m *mockNonWorkingDayRepo) GetYear(year int) (*models.CalendarYear, error) {
	return m.years[year], nil
}

func (m *mockNonWorkingDayRepo) ListYears() ([]models.CalendarYear, error) {
	var out []models.CalendarYear
	for _, y := range m.years {
		out = append(out, *y)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

// ── calendars ──

type funcCalendar func(time.Time) (bool, error)

func (f funcCalendar) IsWorkday(day time.Time) (bool, error) {
	return f(day)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func strPtr(s string) *string {
	return &s
}
