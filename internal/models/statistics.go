package models

// MonthlyStatistics summarises one month of records.
type MonthlyStatistics struct {
	Year            int           `json:"year"`
	Month           int           `json:"month"`
	TotalOvertime   float64       `json:"total_overtime"`
	WorkDayCount    int           `json:"work_day_count"`
	AverageOvertime float64       `json:"average_overtime"`
	Records         []*WorkRecord `json:"records"`
}

// ProjectionStatistics is the current month's summary plus the
// overtime still needed to reach the target average.
type ProjectionStatistics struct {
	MonthlyStatistics

	CurrentAverageOvertime   float64 `json:"current_average_overtime"`
	TotalWorkDays            int     `json:"total_work_days"`
	ActualWorkDays           int     `json:"actual_work_days"`
	RemainingWorkdays        int     `json:"remaining_workdays"`
	AdditionalOvertimeNeeded float64 `json:"additional_overtime_needed"`
	DailyAverageNeeded       float64 `json:"daily_average_needed"`
	TargetAverage            float64 `json:"target_average"`
}

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}
