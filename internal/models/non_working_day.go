package models

import (
	"time"
)

// NonWorkingDay is a day off taken from an imported production calendar.
type NonWorkingDay struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"`
	Year        int       `gorm:"index" json:"year"`
	Month       int       `gorm:"index" json:"month"`
	Day         int       `json:"day"`
	Transferred bool      `gorm:"not null;default:false" json:"transferred"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (NonWorkingDay) TableName() string {
	return "non_working_days"
}

// CalendarYear marks a year whose production calendar has been imported.
type CalendarYear struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Year       int       `gorm:"uniqueIndex;not null" json:"year"`
	Workdays   int       `gorm:"not null;default:0" json:"workdays"`
	Holidays   int       `gorm:"not null;default:0" json:"holidays"`
	Hours40    float64   `gorm:"not null;default:0" json:"hours40"`
	Source     string    `json:"source"`
	ImportedAt time.Time `gorm:"autoUpdateTime" json:"imported_at"`
}

func (CalendarYear) TableName() string {
	return "calendar_years"
}
