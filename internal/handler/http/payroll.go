package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/hrms-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-dev/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	MarkProcessed(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	MyPayslip(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func parsePeriod(month string) (time.Time, error) {
	if month == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01", month)
}

func (h *payrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	period, err := parsePeriod(req.Month)
	if err != nil {
		response.BadRequest(w, "Month must be in YYYY-MM format", nil)
		return
	}

	result, err := h.payrollService.Generate(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", result)
}

func (h *payrollHandlerImpl) MarkProcessed(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.payrollService.MarkProcessed, "Payslip processed")
}

func (h *payrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	h.advance(w, r, h.payrollService.MarkPaid, "Payslip paid")
}

func (h *payrollHandlerImpl) advance(
	w http.ResponseWriter,
	r *http.Request,
	fn func(context.Context, uuid.UUID) (*payroll.PayslipResponse, error),
	message string,
) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w, "Payslip not found")
		return
	}

	result, err := fn(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}

func (h *payrollHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Month must be in YYYY-MM format", nil)
		return
	}

	result, err := h.payrollService.ListByPeriod(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) MyPayslip(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	period, err := parsePeriod(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Month must be in YYYY-MM format", nil)
		return
	}

	result, err := h.payrollService.GetForUser(r.Context(), userID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Month must be in YYYY-MM format", nil)
		return
	}

	data, filename, err := h.payrollService.ExportExcel(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
