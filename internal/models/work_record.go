package models

import (
	"time"

	"overtime-tracker/pkg/dateutil"
)

// WorkRecord is one calendar day: either a clock-out time or a leave day.
type WorkRecord struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Date          string    `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"`
	ClockOut      *string   `gorm:"type:varchar(5)" json:"clock_out"`
	IsLeave       bool      `gorm:"not null;default:false" json:"is_leave"`
	OvertimeHours float64   `gorm:"not null;default:0" json:"overtime_hours"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkRecord) TableName() string {
	return "work_records"
}

// HasClockOut reports whether a non-empty clock-out time is set.
func (wr *WorkRecord) HasClockOut() bool {
	return wr.ClockOut != nil && *wr.ClockOut != ""
}

// IsWorked reports whether the day counts towards the overtime average:
// not a leave day and a clock-out time present.
func (wr *WorkRecord) IsWorked() bool {
	return !wr.IsLeave && wr.HasClockOut()
}

// ClockOutValue returns the clock-out time or an empty string.
func (wr *WorkRecord) ClockOutValue() string {
	if wr.ClockOut == nil {
		return ""
	}
	return *wr.ClockOut
}

// Day parses the record's date.
func (wr *WorkRecord) Day() (time.Time, error) {
	return dateutil.ParseDate(wr.Date)
}

// IsValid checks the record invariants
func (wr *WorkRecord) IsValid() bool {
	if _, err := wr.Day(); err != nil {
		return false
	}
	if wr.OvertimeHours < 0 {
		return false
	}
	if wr.IsLeave && wr.ClockOut != nil {
		return false
	}
	return true
}
