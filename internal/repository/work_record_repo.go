package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"overtime-tracker/internal/models"
	"overtime-tracker/pkg/dateutil"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkRecordRepository interface {
	Upsert(record *models.WorkRecord) error
	Update(record *models.WorkRecord) (bool, error)
	GetByDate(date string) (*models.WorkRecord, error)
	Delete(date string) (bool, error)
	ListByMonth(year, month int) ([]*models.WorkRecord, error)
	ListDistinctMonths() ([]models.YearMonth, error)
}

type GormWorkRecordRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormWorkRecordRepository(db *gorm.DB, logger *logrus.Logger) (*GormWorkRecordRepository, error) {
	if err := db.AutoMigrate(&models.WorkRecord{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate work_records table")
		return nil, err
	}

	logger.Debug("Work record repository initialized")

	return &GormWorkRecordRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert inserts the record or replaces the one stored for the same date.
func (r *GormWorkRecordRepository) Upsert(record *models.WorkRecord) error {
	if !record.IsValid() {
		r.logger.WithField("date", record.Date).Warn("Invalid work record data")
		return errors.New("invalid work record data")
	}

	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"clock_out", "is_leave", "overtime_hours", "updated_at"}),
	}).Create(record)
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("date", record.Date).Error("Failed to upsert work record")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"date":     record.Date,
		"is_leave": record.IsLeave,
		"overtime": record.OvertimeHours,
	}).Info("Work record saved")

	return nil
}

// Update changes an existing record and reports whether one was found.
func (r *GormWorkRecordRepository) Update(record *models.WorkRecord) (bool, error) {
	if !record.IsValid() {
		r.logger.WithField("date", record.Date).Warn("Invalid work record data for update")
		return false, errors.New("invalid work record data")
	}

	result := r.db.Model(&models.WorkRecord{}).
		Where("date = ?", record.Date).
		Updates(map[string]interface{}{
			"clock_out":      record.ClockOut,
			"is_leave":       record.IsLeave,
			"overtime_hours": record.OvertimeHours,
		})
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("date", record.Date).Error("Failed to update work record")
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("date", record.Date).Warn("Work record not found for update")
		return false, nil
	}

	r.logger.WithFields(logrus.Fields{
		"date":     record.Date,
		"is_leave": record.IsLeave,
		"overtime": record.OvertimeHours,
	}).Info("Work record updated")

	return true, nil
}

func (r *GormWorkRecordRepository) GetByDate(date string) (*models.WorkRecord, error) {
	var record models.WorkRecord
	result := r.db.Where("date = ?", date).First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("date", date).Debug("Work record not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get work record by date")
		return nil, result.Error
	}

	return &record, nil
}

func (r *GormWorkRecordRepository) Delete(date string) (bool, error) {
	result := r.db.Where("date = ?", date).Delete(&models.WorkRecord{})
	if result.Error != nil {
		r.logger.WithError(result.Error).WithField("date", date).Error("Failed to delete work record")
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("date", date).Warn("Work record not found for deletion")
		return false, nil
	}

	r.logger.WithField("date", date).Info("Work record deleted")
	return true, nil
}

// ListByMonth returns the month's records ordered by date.
func (r *GormWorkRecordRepository) ListByMonth(year, month int) ([]*models.WorkRecord, error) {
	var records []*models.WorkRecord

	prefix := dateutil.MonthPrefix(year, time.Month(month))
	result := r.db.Where("date LIKE ?", prefix+"%").Order("date ASC").Find(&records)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list work records by month")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"year":  year,
		"month": month,
		"count": len(records),
	}).Debug("Retrieved work records by month")

	return records, nil
}

// ListDistinctMonths returns every month holding at least one record, newest first.
func (r *GormWorkRecordRepository) ListDistinctMonths() ([]models.YearMonth, error) {
	var keys []string
	result := r.db.Raw(
		"SELECT DISTINCT substr(date, 1, 7) AS month_key FROM work_records ORDER BY month_key DESC",
	).Scan(&keys)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to list distinct record months")
		return nil, result.Error
	}

	months := make([]models.YearMonth, 0, len(keys))
	for _, key := range keys {
		ym, err := parseYearMonth(key)
		if err != nil {
			r.logger.WithError(err).WithField("key", key).Warn("Skipping malformed record month")
			continue
		}
		months = append(months, ym)
	}

	return months, nil
}

func parseYearMonth(key string) (models.YearMonth, error) {
	if len(key) != 7 || key[4] != '-' {
		return models.YearMonth{}, fmt.Errorf("malformed month key %q", key)
	}
	year, err := strconv.Atoi(key[:4])
	if err != nil {
		return models.YearMonth{}, fmt.Errorf("malformed year in %q: %w", key, err)
	}
	month, err := strconv.Atoi(key[5:])
	if err != nil || month < 1 || month > 12 {
		return models.YearMonth{}, fmt.Errorf("malformed month in %q", key)
	}
	return models.YearMonth{Year: year, Month: month}, nil
}
