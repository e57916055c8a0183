package http

import (
	"net/http"

	"overtime-tracker/internal/handler/http/response"
	"overtime-tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type CalendarHandler interface {
	CheckDay(w http.ResponseWriter, r *http.Request)
}

type CalendarHandlerImpl struct {
	nonWorkingDayService *service.NonWorkingDayService
	logger               *logrus.Logger
}

func NewCalendarHandler(nonWorkingDayService *service.NonWorkingDayService, logger *logrus.Logger) CalendarHandler {
	return &CalendarHandlerImpl{nonWorkingDayService: nonWorkingDayService, logger: logger}
}

// CheckDay implements CalendarHandler.
func (h *CalendarHandlerImpl) CheckDay(w http.ResponseWriter, r *http.Request) {
	status, err := h.nonWorkingDayService.CheckDay(chi.URLParam(r, "date"))
	if err != nil {
		h.logger.WithError(err).Debug("Failed to check day")
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}
