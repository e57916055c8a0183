package service

import (
	"fmt"
	"path/filepath"

	"overtime-tracker/internal/calendar"
	"overtime-tracker/internal/models"
	"overtime-tracker/internal/repository"
	"overtime-tracker/pkg/dateutil"
	"overtime-tracker/pkg/weekends"

	"github.com/sirupsen/logrus"
)

// DayStatus is the calendar's answer for one date.
type DayStatus struct {
	Date       string `json:"date"`
	IsWorkday  bool   `json:"is_workday"`
	YearLoaded bool   `json:"year_loaded"`
}

type NonWorkingDayService struct {
	repo     repository.NonWorkingDayRepository
	calendar calendar.Calendar
	logger   *logrus.Logger
}

func NewNonWorkingDayService(
	repo repository.NonWorkingDayRepository,
	cal calendar.Calendar,
	logger *logrus.Logger,
) *NonWorkingDayService {
	return &NonWorkingDayService{repo: repo, calendar: cal, logger: logger}
}

// LoadFromJSON imports a production calendar file, replacing the year it covers.
func (s *NonWorkingDayService) LoadFromJSON(filePath string) (*weekends.Calendar, error) {
	parsed, err := weekends.ParseWeekendsJSON(filePath)
	if err != nil {
		return nil, err
	}

	days := make([]models.NonWorkingDay, 0, len(parsed.NonWorkingDays))
	for _, wd := range parsed.NonWorkingDays {
		days = append(days, models.NonWorkingDay{
			Date:        dateutil.FormatDate(wd.Date),
			Year:        wd.Year,
			Month:       wd.Month,
			Day:         wd.Day,
			Transferred: wd.Transferred,
		})
	}

	year := &models.CalendarYear{
		Year:     parsed.Year,
		Workdays: parsed.Statistic.Workdays,
		Holidays: parsed.Statistic.Holidays,
		Hours40:  parsed.Statistic.Hours40,
		Source:   filepath.Base(filePath),
	}

	if err := s.repo.ReplaceYear(year, days); err != nil {
		return nil, fmt.Errorf("failed to store calendar %d: %w", parsed.Year, err)
	}

	s.logger.WithFields(logrus.Fields{
		"year":      parsed.Year,
		"days_off":  len(days),
		"shortened": len(parsed.ShortenedDays),
		"file":      filePath,
	}).Info("Production calendar imported")

	return parsed, nil
}

// CheckDay reports whether date is a workday and whether its year was imported.
func (s *NonWorkingDayService) CheckDay(date string) (*DayStatus, error) {
	key, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	day, _ := dateutil.ParseDate(key)

	isWorkday, err := s.calendar.IsWorkday(day)
	if err != nil {
		return nil, fmt.Errorf("failed to check day: %w", err)
	}

	year, err := s.repo.GetYear(day.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to look up calendar year: %w", err)
	}

	return &DayStatus{
		Date:       key,
		IsWorkday:  isWorkday,
		YearLoaded: year != nil,
	}, nil
}

// ListForMonth returns the imported days off of a month.
func (s *NonWorkingDayService) ListForMonth(year, month int) ([]models.NonWorkingDay, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}
	return s.repo.GetByYearMonth(year, month)
}

// ListYears returns the imported calendar years.
func (s *NonWorkingDayService) ListYears() ([]models.CalendarYear, error) {
	return s.repo.ListYears()
}
