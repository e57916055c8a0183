package http

import (
	"encoding/json"
	"net/http"

	"overtime-tracker/internal/handler/http/response"
	"overtime-tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type RecordHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RecordHandlerImpl struct {
	recordService *service.WorkRecordService
	logger        *logrus.Logger
}

func NewRecordHandler(recordService *service.WorkRecordService, logger *logrus.Logger) RecordHandler {
	return &RecordHandlerImpl{recordService: recordService, logger: logger}
}

// Create implements RecordHandler.
func (h *RecordHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req service.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Debug("Create record decode error")
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.recordService.Save(req)
	if err != nil {
		h.logError(err, "save")
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record saved", record)
}

// Update implements RecordHandler.
func (h *RecordHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req service.RecordInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Debug("Update record decode error")
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.recordService.Update(chi.URLParam(r, "date"), req)
	if err != nil {
		h.logError(err, "update")
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record updated", record)
}

// Get implements RecordHandler.
func (h *RecordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	record, err := h.recordService.Get(chi.URLParam(r, "date"))
	if err != nil {
		h.logError(err, "get")
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// Delete implements RecordHandler.
func (h *RecordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.recordService.Delete(chi.URLParam(r, "date")); err != nil {
		h.logError(err, "delete")
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}

func (h *RecordHandlerImpl) logError(err error, action string) {
	h.logger.WithError(err).WithField("action", action).Debug("Record request rejected")
}
