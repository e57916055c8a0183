package service

import "errors"

var (
	ErrDateRequired   = errors.New("date is required")
	ErrInvalidDate    = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrRecordNotFound = errors.New("work record not found")
	ErrExportNoData   = errors.New("no work records to export")
)
