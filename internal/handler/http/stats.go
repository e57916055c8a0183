package http

import (
	"fmt"
	"net/http"
	"strconv"

	"overtime-tracker/internal/handler/http/response"
	"overtime-tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type StatsHandler interface {
	Current(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Month(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService  *service.StatisticsService
	exportService *service.ExportService
	logger        *logrus.Logger
}

func NewStatsHandler(statsService *service.StatisticsService, exportService *service.ExportService, logger *logrus.Logger) StatsHandler {
	return &StatsHandlerImpl{statsService: statsService, exportService: exportService, logger: logger}
}

// Current implements StatsHandler.
func (h *StatsHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.CurrentMonthProjection()
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute current month statistics")
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// History implements StatsHandler.
func (h *StatsHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	history, err := h.statsService.History()
	if err != nil {
		h.logger.WithError(err).Error("Failed to compute history")
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{"history": history})
}

// Month implements StatsHandler.
func (h *StatsHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be a number", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Month must be a number", nil)
		return
	}

	stats, err := h.statsService.MonthStatistics(year, month)
	if err != nil {
		h.logger.WithError(err).Debug("Failed to compute month statistics")
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Export implements StatsHandler.
func (h *StatsHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.exportService.ExportHistory()
	if err != nil {
		h.logger.WithError(err).Warn("Failed to export history")
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.WithError(err).Error("Failed to write export")
	}
}
