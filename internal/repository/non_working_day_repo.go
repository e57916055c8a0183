package repository

import (
	"errors"
	"time"

	"overtime-tracker/internal/models"
	"overtime-tracker/pkg/dateutil"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type NonWorkingDayRepository interface {
	GetByYearMonth(year, month int) ([]models.NonWorkingDay, error)
	IsNonWorkingDay(date time.Time) (bool, error)
	ReplaceYear(year *models.CalendarYear, days []models.NonWorkingDay) error
	GetYear(year int) (*models.CalendarYear, error)
	ListYears() ([]models.CalendarYear, error)
}

type GormNonWorkingDayRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormNonWorkingDayRepository(db *gorm.DB, logger *logrus.Logger) (*GormNonWorkingDayRepository, error) {
	if err := db.AutoMigrate(&models.NonWorkingDay{}, &models.CalendarYear{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate calendar tables")
		return nil, err
	}

	return &GormNonWorkingDayRepository{db: db, logger: logger}, nil
}

func (r *GormNonWorkingDayRepository) GetByYearMonth(year, month int) ([]models.NonWorkingDay, error) {
	var days []models.NonWorkingDay
	err := r.db.Where("year = ? AND month = ?", year, month).Order("day ASC").Find(&days).Error
	return days, err
}

func (r *GormNonWorkingDayRepository) IsNonWorkingDay(date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.NonWorkingDay{}).
		Where("date = ?", dateutil.FormatDate(date)).
		Count(&count).Error
	return count > 0, err
}

// ReplaceYear swaps the stored days off of one year for days in a single transaction.
func (r *GormNonWorkingDayRepository) ReplaceYear(year *models.CalendarYear, days []models.NonWorkingDay) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("year = ?", year.Year).Delete(&models.NonWorkingDay{}).Error; err != nil {
			return err
		}
		if len(days) > 0 {
			if err := tx.CreateInBatches(&days, 100).Error; err != nil {
				return err
			}
		}

		var existing models.CalendarYear
		err := tx.Where("year = ?", year.Year).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(year).Error
		case err != nil:
			return err
		}

		year.ID = existing.ID
		return tx.Save(year).Error
	})
	if err != nil {
		r.logger.WithError(err).WithField("year", year.Year).Error("Failed to replace calendar year")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"year": year.Year,
		"days": len(days),
	}).Info("Calendar year stored")

	return nil
}

// GetYear returns nil when the year has not been imported.
func (r *GormNonWorkingDayRepository) GetYear(year int) (*models.CalendarYear, error) {
	var cy models.CalendarYear
	err := r.db.Where("year = ?", year).First(&cy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cy, nil
}

func (r *GormNonWorkingDayRepository) ListYears() ([]models.CalendarYear, error) {
	var years []models.CalendarYear
	err := r.db.Order("year ASC").Find(&years).Error
	return years, err
}
