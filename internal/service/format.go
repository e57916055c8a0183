package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"overtime-tracker/internal/models"
)

// FormatRecord renders one day for chat output.
func FormatRecord(record *models.WorkRecord) string {
	if record == nil {
		return "❌ Record not found"
	}

	switch {
	case record.IsLeave:
		return fmt.Sprintf("🏖 %s: leave", record.Date)
	case !record.HasClockOut():
		return fmt.Sprintf("❔ %s: no clock-out", record.Date)
	default:
		return fmt.Sprintf("🕔 %s: out at %s, overtime %s",
			record.Date, record.ClockOutValue(), formatHours(record.OvertimeHours))
	}
}

// FormatMonth renders a month's statistics with its records.
func (s *StatisticsService) FormatMonth(stats *models.MonthlyStatistics) string {
	if stats == nil {
		return "❌ Statistics not found"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Statistics for %s %d\n\n", time.Month(stats.Month), stats.Year)
	fmt.Fprintf(&b, "⏰ Total overtime: %s\n", formatHours(stats.TotalOvertime))
	fmt.Fprintf(&b, "📋 Days worked: %d\n", stats.WorkDayCount)
	fmt.Fprintf(&b, "📈 Average per day: %s\n", formatHours(stats.AverageOvertime))

	if len(stats.Records) > 0 {
		b.WriteString("\n")
		for _, r := range stats.Records {
			b.WriteString(FormatRecord(r))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatProjection renders the current-month projection.
func (s *StatisticsService) FormatProjection(stats *models.ProjectionStatistics) string {
	if stats == nil {
		return "❌ Statistics not found"
	}

	result := fmt.Sprintf(
		`📊 %s %d

📅 Workdays in month: %d
   🏖 Excluding leave: %d
   ⏳ Remaining: %d

✅ Days worked: %d
⏰ Total overtime: %s
📈 Average per worked day: %s
📉 Average per workday: %s`,
		time.Month(stats.Month), stats.Year,
		stats.TotalWorkDays,
		stats.ActualWorkDays,
		stats.RemainingWorkdays,
		stats.WorkDayCount,
		formatHours(stats.TotalOvertime),
		formatHours(stats.AverageOvertime),
		formatHours(stats.CurrentAverageOvertime),
	)

	result += fmt.Sprintf("\n\n🎯 Target: %s per day", formatHours(stats.TargetAverage))
	if stats.AdditionalOvertimeNeeded == 0 {
		result += "\n🎉 Target reached"
		return result
	}

	result += fmt.Sprintf("\n➕ Still needed: %s", formatHours(stats.AdditionalOvertimeNeeded))
	if stats.RemainingWorkdays > 0 {
		result += fmt.Sprintf("\n⚡ Per remaining day: %s", formatHours(stats.DailyAverageNeeded))
	}

	return result
}

// FormatHistory renders one line per month.
func (s *StatisticsService) FormatHistory(history []*models.MonthlyStatistics) string {
	if len(history) == 0 {
		return "📭 No records yet"
	}

	var b strings.Builder
	b.WriteString("🗓 Overtime history\n")
	for _, m := range history {
		fmt.Fprintf(&b, "\n%04d-%02d: %s over %d days (avg %s)",
			m.Year, m.Month, formatHours(m.TotalOvertime), m.WorkDayCount, formatHours(m.AverageOvertime))
	}

	return b.String()
}

// FormatCalendarYears renders the imported production calendar years.
func FormatCalendarYears(years []models.CalendarYear) string {
	if len(years) == 0 {
		return "📭 No production calendar imported, Mon-Fri assumed"
	}

	var b strings.Builder
	b.WriteString("📅 Production calendars:")
	for _, y := range years {
		fmt.Fprintf(&b, "\n%d: %d workdays, %d days off", y.Year, y.Workdays, y.Holidays)
		if y.Source != "" {
			fmt.Fprintf(&b, " (%s)", y.Source)
		}
	}
	return b.String()
}

// FormatDaysOff renders the imported days off of one month.
func FormatDaysOff(year, month int, days []models.NonWorkingDay) string {
	if len(days) == 0 {
		return fmt.Sprintf("📭 No days off imported for %s %d", time.Month(month), year)
	}

	dates := make([]string, 0, len(days))
	for _, d := range days {
		mark := strconv.Itoa(d.Day)
		if d.Transferred {
			mark += "+"
		}
		dates = append(dates, mark)
	}
	return fmt.Sprintf("🏖 Days off in %s %d: %s", time.Month(month), year, strings.Join(dates, ", "))
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.2fh", h)
}
