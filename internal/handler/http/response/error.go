package response

import (
	"errors"
	"net/http"

	"overtime-tracker/internal/service"
)

// HandleError maps service errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDateRequired),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, service.ErrRecordNotFound):
		NotFound(w, "Record not found")
	case errors.Is(err, service.ErrExportNoData):
		NotFound(w, "No records to export")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
