package main

import (
	"database/sql"
	"fmt"

	"overtime-tracker/internal/calendar"
	"overtime-tracker/internal/config"
	"overtime-tracker/internal/logger"
	"overtime-tracker/internal/overtime"
	"overtime-tracker/internal/repository"
	"overtime-tracker/internal/service"
	"overtime-tracker/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// app holds the wired services shared by every subcommand.
type app struct {
	sqlDB  *sql.DB
	clock  clock.Clock
	logger *logrus.Logger

	recordService        *service.WorkRecordService
	statsService         *service.StatisticsService
	nonWorkingDayService *service.NonWorkingDayService
	exportService        *service.ExportService
}

func newApp(cfg *config.Config, log *logrus.Logger) (*app, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	recordRepo, err := repository.NewGormWorkRecordRepository(db, log)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create work record repository: %w", err)
	}

	dayRepo, err := repository.NewGormNonWorkingDayRepository(db, log)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create non-working day repository: %w", err)
	}

	calculator, err := overtime.NewCalculator(cfg.StandardEnd)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	clk := clock.System{}
	cal := calendar.NewCompositeCalendar(calendar.NewProductionCalendar(dayRepo), calendar.WeekdayCalendar{}, log)

	statsService := service.NewStatisticsService(recordRepo, cal, clk, cfg.TargetAverage, log)

	a := &app{
		sqlDB:                sqlDB,
		clock:                clk,
		logger:               log,
		recordService:        service.NewWorkRecordService(recordRepo, calculator, log),
		statsService:         statsService,
		nonWorkingDayService: service.NewNonWorkingDayService(dayRepo, cal, log),
		exportService:        service.NewExportService(statsService, clk, log),
	}

	if cfg.CalendarFile != "" {
		if _, err := a.nonWorkingDayService.LoadFromJSON(cfg.CalendarFile); err != nil {
			log.WithError(err).WithField("file", cfg.CalendarFile).Warn("Failed to import production calendar, continuing")
		}
	}

	return a, nil
}

func (a *app) Close() {
	if err := a.sqlDB.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing database")
	}
}
