package service

import (
	"errors"
	"testing"
	"time"

	"overtime-tracker/internal/calendar"
	"overtime-tracker/internal/models"
	"overtime-tracker/internal/overtime"
	"overtime-tracker/pkg/clock"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStatsService(now time.Time) (*StatisticsService, *mockWorkRecordRepo) {
	repo := newMockWorkRecordRepo()
	svc := NewStatisticsService(repo, calendar.WeekdayCalendar{}, clock.Fixed{At: now}, DefaultTargetAverage, quietLogger())
	return svc, repo
}

func addWorked(t *testing.T, repo *mockWorkRecordRepo, date, clockOut string) {
	t.Helper()
	require.NoError(t, repo.Upsert(&models.WorkRecord{
		Date:          date,
		ClockOut:      strPtr(clockOut),
		OvertimeHours: overtime.Compute(clockOut, false),
	}))
}

func addLeave(t *testing.T, repo *mockWorkRecordRepo, date string) {
	t.Helper()
	require.NoError(t, repo.Upsert(&models.WorkRecord{Date: date, IsLeave: true}))
}

// First week of September 2025 worked, leave on Monday the 8th.
func seedSeptember(t *testing.T, repo *mockWorkRecordRepo) {
	t.Helper()
	addWorked(t, repo, "2025-09-01", "18:00")
	addWorked(t, repo, "2025-09-02", "17:30")
	addWorked(t, repo, "2025-09-03", "19:00")
	addWorked(t, repo, "2025-09-04", "17:00")
	addWorked(t, repo, "2025-09-05", "20:00")
	addLeave(t, repo, "2025-09-08")
}

func september(day int) time.Time {
	return time.Date(2025, time.September, day, 10, 30, 0, 0, time.Local)
}

func TestStatisticsService_MonthStatistics(t *testing.T) {
	svc, repo := setupTestStatsService(september(15))
	seedSeptember(t, repo)

	stats, err := svc.MonthStatistics(2025, 9)
	require.NoError(t, err)

	assert.Equal(t, 2025, stats.Year)
	assert.Equal(t, 9, stats.Month)
	assert.Equal(t, 6.5, stats.TotalOvertime)
	assert.Equal(t, 5, stats.WorkDayCount)
	assert.Equal(t, 1.3, stats.AverageOvertime)
	require.Len(t, stats.Records, 6)
	assert.Equal(t, "2025-09-01", stats.Records[0].Date)
}

func TestStatisticsService_MonthStatistics_Empty(t *testing.T) {
	svc, _ := setupTestStatsService(september(15))

	stats, err := svc.MonthStatistics(2024, 2)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalOvertime)
	assert.Zero(t, stats.WorkDayCount)
	assert.Zero(t, stats.AverageOvertime)
	assert.NotNil(t, stats.Records)
	assert.Empty(t, stats.Records)
}

func TestStatisticsService_MonthStatistics_AverageRoundsHalfToEven(t *testing.T) {
	svc, repo := setupTestStatsService(september(15))
	addWorked(t, repo, "2025-09-01", "17:15")
	addWorked(t, repo, "2025-09-02", "17:00")

	stats, err := svc.MonthStatistics(2025, 9)
	require.NoError(t, err)

	assert.Equal(t, 0.25, stats.TotalOvertime)
	assert.Equal(t, 2, stats.WorkDayCount)
	// 0.125 is exact in binary, so the tie goes to the even digit.
	assert.Equal(t, 0.12, stats.AverageOvertime)
}

func TestStatisticsService_MonthStatistics_LeaveOnly(t *testing.T) {
	svc, repo := setupTestStatsService(september(15))
	addLeave(t, repo, "2025-09-01")
	addLeave(t, repo, "2025-09-02")

	stats, err := svc.MonthStatistics(2025, 9)
	require.NoError(t, err)

	assert.Zero(t, stats.WorkDayCount)
	assert.Zero(t, stats.AverageOvertime)
	assert.Len(t, stats.Records, 2)
}

func TestStatisticsService_MonthStatistics_InvalidMonth(t *testing.T) {
	svc, _ := setupTestStatsService(september(15))

	_, err := svc.MonthStatistics(2025, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestStatisticsService_MonthStatistics_StoreError(t *testing.T) {
	svc, repo := setupTestStatsService(september(15))
	storeErr := errors.New("database is locked")
	repo.err = storeErr

	_, err := svc.MonthStatistics(2025, 9)
	assert.ErrorIs(t, err, storeErr)
}

func TestStatisticsService_CurrentMonthProjection(t *testing.T) {
	svc, repo := setupTestStatsService(september(15))
	seedSeptember(t, repo)

	p, err := svc.CurrentMonthProjection()
	require.NoError(t, err)

	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, 9, p.Month)
	assert.Equal(t, 6.5, p.TotalOvertime)
	assert.Equal(t, 5, p.WorkDayCount)
	assert.Equal(t, 1.3, p.AverageOvertime)
	assert.Equal(t, 22, p.TotalWorkDays)
	assert.Equal(t, 21, p.ActualWorkDays)
	assert.Equal(t, 0.3, p.CurrentAverageOvertime)
	// Sep 15-19, 22-26, 29-30
	assert.Equal(t, 12, p.RemainingWorkdays)
	// 1.5 * (5 + 12) - 6.5
	assert.Equal(t, 19.0, p.AdditionalOvertimeNeeded)
	assert.Equal(t, 1.58, p.DailyAverageNeeded)
	assert.Equal(t, DefaultTargetAverage, p.TargetAverage)

	require.Len(t, p.Records, 6)
	assert.Equal(t, "2025-09-08", p.Records[0].Date)
	assert.Equal(t, "2025-09-01", p.Records[5].Date)
}

func TestStatisticsService_CurrentMonthProjection_RecordedDaysNotRemaining(t *testing.T) {
	svc, repo := setupTestStatsService(september(15))
	seedSeptember(t, repo)
	addWorked(t, repo, "2025-09-16", "18:30")

	p, err := svc.CurrentMonthProjection()
	require.NoError(t, err)

	assert.Equal(t, 11, p.RemainingWorkdays)
	assert.Equal(t, 6, p.WorkDayCount)
	assert.Equal(t, 8.0, p.TotalOvertime)
}

func TestStatisticsService_CurrentMonthProjection_FutureLeaveNotRemaining(t *testing.T) {
	svc, repo := setupTestStatsService(september(15))
	seedSeptember(t, repo)
	addLeave(t, repo, "2025-09-17")

	p, err := svc.CurrentMonthProjection()
	require.NoError(t, err)

	assert.Equal(t, 11, p.RemainingWorkdays)
	assert.Equal(t, 5, p.WorkDayCount)
	assert.Equal(t, 20, p.ActualWorkDays)
	// 1.5 * (5 + 11) - 6.5
	assert.Equal(t, 17.5, p.AdditionalOvertimeNeeded)
	assert.Equal(t, 1.59, p.DailyAverageNeeded)
}

func TestStatisticsService_CurrentMonthProjection_WarnsWithoutProductionCalendar(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	days := newMockNonWorkingDayRepo()
	cal := calendar.NewCompositeCalendar(calendar.NewProductionCalendar(days), calendar.WeekdayCalendar{}, logger)
	svc := NewStatisticsService(newMockWorkRecordRepo(), cal, clock.Fixed{At: september(15)}, DefaultTargetAverage, logger)

	p, err := svc.CurrentMonthProjection()
	require.NoError(t, err)
	assert.Equal(t, 22, p.TotalWorkDays)

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings++
			assert.Equal(t, 2025, entry.Data["year"])
			assert.Contains(t, entry.Message, "Mon-Fri")
		}
	}
	assert.Equal(t, 1, warnings)

	hook.Reset()
	require.NoError(t, days.ReplaceYear(&models.CalendarYear{Year: 2025}, nil))

	_, err = svc.CurrentMonthProjection()
	require.NoError(t, err)
	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, entry.Level, entry.Message)
	}
}

func TestStatisticsService_CurrentMonthProjection_LastDay(t *testing.T) {
	svc, repo := setupTestStatsService(september(30))
	addWorked(t, repo, "2025-09-30", "17:30")

	p, err := svc.CurrentMonthProjection()
	require.NoError(t, err)

	assert.Equal(t, 0, p.RemainingWorkdays)
	assert.Equal(t, 1.0, p.AdditionalOvertimeNeeded)
	assert.Zero(t, p.DailyAverageNeeded)
}

func TestStatisticsService_CurrentMonthProjection_TargetReached(t *testing.T) {
	svc, repo := setupTestStatsService(september(3))
	addWorked(t, repo, "2025-09-01", "23:00")
	addWorked(t, repo, "2025-09-02", "23:00")

	p, err := svc.CurrentMonthProjection()
	require.NoError(t, err)

	// 1.5 * (2 + 20) = 33 > 12, so more is still needed
	assert.Equal(t, 20, p.RemainingWorkdays)
	assert.Equal(t, 21.0, p.AdditionalOvertimeNeeded)
	assert.Equal(t, 1.05, p.DailyAverageNeeded)

	svc, repo = setupTestStatsService(september(30))
	for _, d := range []string{"2025-09-26", "2025-09-29"} {
		addWorked(t, repo, d, "23:59")
	}

	p, err = svc.CurrentMonthProjection()
	require.NoError(t, err)

	// Sep 30 is still open: 1.5 * (2 + 1) = 4.5 < 13.97
	assert.Equal(t, 1, p.RemainingWorkdays)
	assert.Zero(t, p.AdditionalOvertimeNeeded)
	assert.Zero(t, p.DailyAverageNeeded)
}

func TestStatisticsService_CurrentMonthProjection_NoWorkdays(t *testing.T) {
	repo := newMockWorkRecordRepo()
	never := funcCalendar(func(time.Time) (bool, error) { return false, nil })
	svc := NewStatisticsService(repo, never, clock.Fixed{At: september(15)}, DefaultTargetAverage, quietLogger())
	addWorked(t, repo, "2025-09-13", "19:00")

	p, err := svc.CurrentMonthProjection()
	require.NoError(t, err)

	assert.Equal(t, 0, p.TotalWorkDays)
	assert.Zero(t, p.CurrentAverageOvertime)
	assert.Equal(t, 0, p.RemainingWorkdays)
	assert.Zero(t, p.DailyAverageNeeded)
	assert.Equal(t, 2.0, p.TotalOvertime)
}

func TestStatisticsService_CurrentMonthProjection_Errors(t *testing.T) {
	calErr := errors.New("calendar unavailable")
	broken := funcCalendar(func(time.Time) (bool, error) { return false, calErr })
	svc := NewStatisticsService(newMockWorkRecordRepo(), broken, clock.Fixed{At: september(15)}, DefaultTargetAverage, quietLogger())

	_, err := svc.CurrentMonthProjection()
	assert.ErrorIs(t, err, calErr)

	svc, repo := setupTestStatsService(september(15))
	storeErr := errors.New("database is locked")
	repo.err = storeErr

	_, err = svc.CurrentMonthProjection()
	assert.ErrorIs(t, err, storeErr)
}

func TestStatisticsService_CurrentMonthProjection_MoreOvertimeNeverRaisesNeed(t *testing.T) {
	prevAdditional := -1.0
	for _, out := range []string{"17:00", "18:00", "19:00", "20:00", "22:00"} {
		svc, repo := setupTestStatsService(september(15))
		seedSeptember(t, repo)
		addWorked(t, repo, "2025-09-12", out)

		p, err := svc.CurrentMonthProjection()
		require.NoError(t, err)

		if prevAdditional >= 0 {
			assert.LessOrEqual(t, p.AdditionalOvertimeNeeded, prevAdditional, out)
		}
		assert.GreaterOrEqual(t, p.AdditionalOvertimeNeeded, 0.0)
		prevAdditional = p.AdditionalOvertimeNeeded
	}
}

func TestStatisticsService_History(t *testing.T) {
	svc, repo := setupTestStatsService(september(15))
	seedSeptember(t, repo)
	addWorked(t, repo, "2025-08-29", "19:00")
	addWorked(t, repo, "2024-12-31", "18:00")

	history, err := svc.History()
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, 2025, history[0].Year)
	assert.Equal(t, 9, history[0].Month)
	assert.Equal(t, 6.5, history[0].TotalOvertime)
	assert.Equal(t, 8, history[1].Month)
	assert.Equal(t, 2.0, history[1].TotalOvertime)
	assert.Equal(t, 2024, history[2].Year)
	assert.Equal(t, 12, history[2].Month)
}

func TestStatisticsService_History_Empty(t *testing.T) {
	svc, _ := setupTestStatsService(september(15))

	history, err := svc.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 2.5, safeDivide(5, 2, 0))
	assert.Equal(t, 0.0, safeDivide(5, 0, 0))
	assert.Equal(t, -1.0, safeDivide(0, 0, -1))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.58, round2(19.0/12))
	assert.Equal(t, 0.3, round2(6.5/22))
	assert.Equal(t, 1.0, round2(0.999))

	// Ties on exact binary values go to even; 0.015 sits just below the tie.
	assert.Equal(t, 0.12, round2(0.125))
	assert.Equal(t, 0.38, round2(0.375))
	assert.Equal(t, 0.01, round2(0.015))
}
