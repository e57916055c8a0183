package service

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"overtime-tracker/internal/calendar"
	"overtime-tracker/internal/models"
	"overtime-tracker/internal/repository"
	"overtime-tracker/pkg/clock"
	"overtime-tracker/pkg/dateutil"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// DefaultTargetAverage is the daily overtime the projection aims for.
const DefaultTargetAverage = 1.5

type StatisticsService struct {
	records       repository.WorkRecordRepository
	calendar      calendar.Calendar
	clock         clock.Clock
	targetAverage float64
	logger        *logrus.Logger
}

func NewStatisticsService(
	records repository.WorkRecordRepository,
	cal calendar.Calendar,
	clk clock.Clock,
	targetAverage float64,
	logger *logrus.Logger,
) *StatisticsService {
	return &StatisticsService{
		records:       records,
		calendar:      cal,
		clock:         clk,
		targetAverage: targetAverage,
		logger:        logger,
	}
}

// overtimeSummary holds unrounded aggregates over a month's records.
type overtimeSummary struct {
	total     float64
	workDays  int
	leaveDays int
}

func summarize(records []*models.WorkRecord) overtimeSummary {
	var s overtimeSummary
	for _, r := range records {
		if r.IsLeave {
			s.leaveDays++
		}
		if r.IsWorked() {
			s.total += r.OvertimeHours
			s.workDays++
		}
	}
	return s
}

func (s overtimeSummary) average() float64 {
	return safeDivide(s.total, float64(s.workDays), 0)
}

// MonthStatistics aggregates the records of one month.
func (s *StatisticsService) MonthStatistics(year, month int) (*models.MonthlyStatistics, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	records, err := s.records.ListByMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load records for %04d-%02d: %w", year, month, err)
	}
	if records == nil {
		records = []*models.WorkRecord{}
	}

	summary := summarize(records)

	s.logger.WithFields(logrus.Fields{
		"year":      year,
		"month":     month,
		"records":   len(records),
		"work_days": summary.workDays,
	}).Debug("Computed monthly statistics")

	return &models.MonthlyStatistics{
		Year:            year,
		Month:           month,
		TotalOvertime:   round2(summary.total),
		WorkDayCount:    summary.workDays,
		AverageOvertime: round2(summary.average()),
		Records:         records,
	}, nil
}

// CurrentMonthProjection summarises the current month and works out how
// much overtime per remaining workday brings the month to the target average.
func (s *StatisticsService) CurrentMonthProjection() (*models.ProjectionStatistics, error) {
	today := dateutil.StartOfDay(s.clock.Now())
	first, last := dateutil.MonthBounds(today)
	year, month := today.Year(), int(today.Month())

	s.warnIfUncovered(year)

	totalWorkDays, err := calendar.CountWorkdays(s.calendar, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to count workdays: %w", err)
	}

	records, err := s.records.ListByMonth(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load records for %04d-%02d: %w", year, month, err)
	}

	summary := summarize(records)
	actualWorkDays := totalWorkDays - summary.leaveDays
	currentAverage := safeDivide(summary.total, float64(totalWorkDays), 0)

	remaining, err := s.remainingWorkdays(today, last, records)
	if err != nil {
		return nil, err
	}

	needed := s.targetAverage * float64(summary.workDays+remaining)
	additional := math.Max(0, needed-summary.total)
	daily := safeDivide(additional, float64(remaining), 0)

	s.logger.WithFields(logrus.Fields{
		"year":            year,
		"month":           month,
		"total_work_days": totalWorkDays,
		"remaining":       remaining,
		"additional":      additional,
	}).Debug("Computed current month projection")

	return &models.ProjectionStatistics{
		MonthlyStatistics: models.MonthlyStatistics{
			Year:            year,
			Month:           month,
			TotalOvertime:   round2(summary.total),
			WorkDayCount:    summary.workDays,
			AverageOvertime: round2(summary.average()),
			Records:         newestFirst(records),
		},
		CurrentAverageOvertime:   round2(currentAverage),
		TotalWorkDays:            totalWorkDays,
		ActualWorkDays:           actualWorkDays,
		RemainingWorkdays:        remaining,
		AdditionalOvertimeNeeded: round2(additional),
		DailyAverageNeeded:       round2(daily),
		TargetAverage:            s.targetAverage,
	}, nil
}

// warnIfUncovered logs once when the year has no production calendar and
// workdays are counted as Mon-Fri.
func (s *StatisticsService) warnIfUncovered(year int) {
	coverage, ok := s.calendar.(calendar.Coverage)
	if !ok {
		return
	}

	loaded, err := coverage.YearLoaded(year)
	if err != nil {
		s.logger.WithError(err).WithField("year", year).Warn("Failed to check production calendar coverage")
		return
	}
	if !loaded {
		s.logger.WithField("year", year).Warn("No production calendar for year, counting Mon-Fri as workdays; set CALENDAR_FILE or run 'calendar import'")
	}
}

// remainingWorkdays counts workdays from today to last that have no record yet.
func (s *StatisticsService) remainingWorkdays(today, last time.Time, records []*models.WorkRecord) (int, error) {
	recorded := make(map[string]struct{}, len(records))
	for _, r := range records {
		recorded[r.Date] = struct{}{}
	}

	remaining := 0
	err := dateutil.EachDay(today, last, func(day time.Time) error {
		ok, err := s.calendar.IsWorkday(day)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, done := recorded[dateutil.FormatDate(day)]; !done {
			remaining++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count remaining workdays: %w", err)
	}

	return remaining, nil
}

// History returns statistics for every month holding records, newest first.
func (s *StatisticsService) History() ([]*models.MonthlyStatistics, error) {
	months, err := s.records.ListDistinctMonths()
	if err != nil {
		return nil, fmt.Errorf("failed to list record months: %w", err)
	}

	history := make([]*models.MonthlyStatistics, 0, len(months))
	for _, ym := range months {
		stats, err := s.MonthStatistics(ym.Year, ym.Month)
		if err != nil {
			return nil, err
		}
		history = append(history, stats)
	}

	return history, nil
}

// safeDivide returns def when the denominator is zero.
func safeDivide(numerator, denominator, def float64) float64 {
	if denominator == 0 {
		return def
	}
	return numerator / denominator
}

// round2 rounds the exact binary value, ties to even.
func round2(v float64) float64 {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', 2, 64)).InexactFloat64()
}

func newestFirst(records []*models.WorkRecord) []*models.WorkRecord {
	out := make([]*models.WorkRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}
