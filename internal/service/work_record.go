package service

import (
	"fmt"
	"strings"

	"overtime-tracker/internal/models"
	"overtime-tracker/internal/overtime"
	"overtime-tracker/internal/repository"
	"overtime-tracker/pkg/dateutil"

	"github.com/sirupsen/logrus"
)

// RecordInput is a day as entered by the user.
type RecordInput struct {
	Date     string  `json:"date"`
	ClockOut *string `json:"clock_out"`
	IsLeave  bool    `json:"is_leave"`
}

type WorkRecordService struct {
	repo       repository.WorkRecordRepository
	calculator *overtime.Calculator
	logger     *logrus.Logger
}

func NewWorkRecordService(
	repo repository.WorkRecordRepository,
	calculator *overtime.Calculator,
	logger *logrus.Logger,
) *WorkRecordService {
	return &WorkRecordService{
		repo:       repo,
		calculator: calculator,
		logger:     logger,
	}
}

// Save stores the day, replacing any record already kept for that date.
func (s *WorkRecordService) Save(input RecordInput) (*models.WorkRecord, error) {
	record, err := s.buildRecord(input.Date, input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(record); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	return record, nil
}

// Update rewrites an existing record. The date comes from the caller, not the input.
func (s *WorkRecordService) Update(date string, input RecordInput) (*models.WorkRecord, error) {
	record, err := s.buildRecord(date, input)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.Update(record)
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	if !found {
		return nil, ErrRecordNotFound
	}

	return record, nil
}

func (s *WorkRecordService) Get(date string) (*models.WorkRecord, error) {
	key, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.GetByDate(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	return record, nil
}

func (s *WorkRecordService) Delete(date string) error {
	key, err := normalizeDate(date)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(key)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if !deleted {
		return ErrRecordNotFound
	}

	return nil
}

func (s *WorkRecordService) buildRecord(date string, input RecordInput) (*models.WorkRecord, error) {
	key, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	record := &models.WorkRecord{
		Date:    key,
		IsLeave: input.IsLeave,
	}

	if !input.IsLeave && input.ClockOut != nil {
		if value := strings.TrimSpace(*input.ClockOut); value != "" {
			record.ClockOut = &value
		}
	}

	hours, outcome := s.calculator.Evaluate(record.ClockOutValue(), record.IsLeave)
	record.OvertimeHours = hours

	if outcome == overtime.OutcomeUnparseable {
		s.logger.WithFields(logrus.Fields{
			"date":      key,
			"clock_out": record.ClockOutValue(),
			"outcome":   outcome.String(),
		}).Warn("Clock-out time not understood, counting no overtime")
	}

	return record, nil
}

func normalizeDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", ErrDateRequired
	}

	day, err := dateutil.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}

	return dateutil.FormatDate(day), nil
}
