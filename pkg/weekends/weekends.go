package weekends

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// WeekendJSON mirrors the xmlcalendar production calendar file.
type WeekendJSON struct {
	Year        int             `json:"year"`
	Months      []MonthWeekends `json:"months"`
	Transitions []Transition    `json:"transitions"`
	Statistic   Statistic       `json:"statistic"`
}

type MonthWeekends struct {
	Month int    `json:"month"`
	Days  string `json:"days"`
}

type Transition struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Statistic struct {
	Workdays int     `json:"workdays"`
	Holidays int     `json:"holidays"`
	Hours40  float64 `json:"hours40"`
	Hours36  float64 `json:"hours36"`
	Hours24  float64 `json:"hours24"`
}

// NonWorkingDay is one day off parsed from the calendar.
type NonWorkingDay struct {
	Date        time.Time `json:"date"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	Day         int       `json:"day"`
	Transferred bool      `json:"transferred"`
}

// Calendar is a parsed production calendar year.
type Calendar struct {
	Year           int
	NonWorkingDays []NonWorkingDay
	// ShortenedDays are pre-holiday workdays marked with "*".
	ShortenedDays []time.Time
	Transitions   []Transition
	Statistic     Statistic
}

// ParseWeekendsJSON reads and parses a calendar file.
func ParseWeekendsJSON(filePath string) (*Calendar, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	defer f.Close()

	return ParseWeekends(f)
}

// ParseWeekends parses a calendar from r.
//
// Every listed day is a day off, except days suffixed with "*": those are
// shortened workdays. A "+" suffix marks a holiday moved onto that day.
// Weekends missing from the list are make-up workdays.
func ParseWeekends(r io.Reader) (*Calendar, error) {
	var weekendJSON WeekendJSON
	if err := json.NewDecoder(r).Decode(&weekendJSON); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	if weekendJSON.Year < 1900 || weekendJSON.Year > 2200 {
		return nil, fmt.Errorf("invalid calendar year %d", weekendJSON.Year)
	}

	cal := &Calendar{
		Year:        weekendJSON.Year,
		Transitions: weekendJSON.Transitions,
		Statistic:   weekendJSON.Statistic,
	}

	for _, monthData := range weekendJSON.Months {
		if monthData.Month < 1 || monthData.Month > 12 {
			return nil, fmt.Errorf("invalid month %d", monthData.Month)
		}

		for _, dayStr := range strings.Split(monthData.Days, ",") {
			dayStr = strings.TrimSpace(dayStr)
			if dayStr == "" {
				continue
			}

			shortened := strings.HasSuffix(dayStr, "*")
			transferred := strings.HasSuffix(dayStr, "+")
			dayStr = strings.TrimSuffix(strings.TrimSuffix(dayStr, "+"), "*")

			day, err := strconv.Atoi(dayStr)
			if err != nil {
				return nil, fmt.Errorf("failed to parse day '%s' in month %d: %w",
					dayStr, monthData.Month, err)
			}

			date := time.Date(weekendJSON.Year, time.Month(monthData.Month), day, 0, 0, 0, 0, time.Local)
			if date.Month() != time.Month(monthData.Month) {
				return nil, fmt.Errorf("day %d does not exist in month %d", day, monthData.Month)
			}

			if shortened {
				cal.ShortenedDays = append(cal.ShortenedDays, date)
				continue
			}

			cal.NonWorkingDays = append(cal.NonWorkingDays, NonWorkingDay{
				Date:        date,
				Year:        weekendJSON.Year,
				Month:       monthData.Month,
				Day:         day,
				Transferred: transferred,
			})
		}
	}

	return cal, nil
}

// GetNonWorkingDaysForMonth returns the days off of one month.
func GetNonWorkingDaysForMonth(days []NonWorkingDay, year, month int) []NonWorkingDay {
	result := []NonWorkingDay{}
	for _, day := range days {
		if day.Year == year && day.Month == month {
			result = append(result, day)
		}
	}
	return result
}

// IsNonWorkingDay reports whether date is among days.
func IsNonWorkingDay(days []NonWorkingDay, date time.Time) bool {
	for _, day := range days {
		if day.Date.Year() == date.Year() &&
			day.Date.Month() == date.Month() &&
			day.Date.Day() == date.Day() {
			return true
		}
	}
	return false
}

// Summary describes the parsed year in one line.
func (c *Calendar) Summary() string {
	return fmt.Sprintf("%d: %d non-working days, %d shortened days, %d workdays, %.1fh at 40h/week",
		c.Year, len(c.NonWorkingDays), len(c.ShortenedDays), c.Statistic.Workdays, c.Statistic.Hours40)
}
