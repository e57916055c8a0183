package calendar

import (
	"errors"
	"fmt"
	"time"

	"overtime-tracker/internal/repository"
	"overtime-tracker/pkg/dateutil"

	"github.com/sirupsen/logrus"
)

// ErrYearNotLoaded is returned when no production calendar covers the date.
var ErrYearNotLoaded = errors.New("production calendar not loaded for year")

// Calendar answers whether a date is a working day.
type Calendar interface {
	IsWorkday(date time.Time) (bool, error)
}

// Coverage is implemented by calendars that only know some years.
type Coverage interface {
	YearLoaded(year int) (bool, error)
}

// WeekdayCalendar treats Monday to Friday as workdays.
type WeekdayCalendar struct{}

func (WeekdayCalendar) IsWorkday(date time.Time) (bool, error) {
	return !dateutil.IsWeekend(date), nil
}

// ProductionCalendar answers from imported non-working days. Any date of a
// loaded year that is not listed is a workday, which covers make-up
// workdays falling on weekends.
type ProductionCalendar struct {
	repo repository.NonWorkingDayRepository
}

func NewProductionCalendar(repo repository.NonWorkingDayRepository) *ProductionCalendar {
	return &ProductionCalendar{repo: repo}
}

func (pc *ProductionCalendar) IsWorkday(date time.Time) (bool, error) {
	year, err := pc.repo.GetYear(date.Year())
	if err != nil {
		return false, fmt.Errorf("failed to look up calendar year: %w", err)
	}
	if year == nil {
		return false, fmt.Errorf("%w: %d", ErrYearNotLoaded, date.Year())
	}

	off, err := pc.repo.IsNonWorkingDay(date)
	if err != nil {
		return false, fmt.Errorf("failed to look up non-working day: %w", err)
	}

	return !off, nil
}

func (pc *ProductionCalendar) YearLoaded(year int) (bool, error) {
	y, err := pc.repo.GetYear(year)
	if err != nil {
		return false, fmt.Errorf("failed to look up calendar year: %w", err)
	}
	return y != nil, nil
}

// CompositeCalendar asks primary first and falls back on error.
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *logrus.Logger
}

func NewCompositeCalendar(primary, fallback Calendar, logger *logrus.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (cc *CompositeCalendar) IsWorkday(date time.Time) (bool, error) {
	isWorkday, err := cc.primary.IsWorkday(date)
	if err == nil {
		return isWorkday, nil
	}

	entry := cc.logger.WithField("date", dateutil.FormatDate(date)).WithError(err)
	if errors.Is(err, ErrYearNotLoaded) {
		entry.Debug("Production calendar missing, falling back")
	} else {
		entry.Warn("Primary calendar failed, falling back")
	}

	return cc.fallback.IsWorkday(date)
}

// YearLoaded reports the primary's coverage. A primary without coverage
// information is assumed to know every year.
func (cc *CompositeCalendar) YearLoaded(year int) (bool, error) {
	if c, ok := cc.primary.(Coverage); ok {
		return c.YearLoaded(year)
	}
	return true, nil
}

// CountWorkdays counts workdays from start to end inclusive.
func CountWorkdays(cal Calendar, start, end time.Time) (int, error) {
	count := 0
	err := dateutil.EachDay(start, end, func(day time.Time) error {
		ok, err := cal.IsWorkday(day)
		if err != nil {
			return err
		}
		if ok {
			count++
		}
		return nil
	})
	return count, err
}
