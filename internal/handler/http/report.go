package http

import (
	"fmt"
	"net/http"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/report"
	"github.com/staffhub-dev/hrms-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func reportQuery(r *http.Request) *report.Query {
	q := &report.Query{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		q.UserID = &userID
	}
	return q
}

func (h *reportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	query := reportQuery(r)
	if errs := query.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	result, err := h.reportService.Summary(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	query := reportQuery(r)
	if errs := query.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	data, filename, err := h.reportService.ExportExcel(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
