package http

import (
	"net/http"
	"strconv"

	"github.com/timeclock-app/timeclock-backend-go/internal/domain/report"
	"github.com/timeclock-app/timeclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MyTodaySummary(w http.ResponseWriter, r *http.Request)
	AttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// MyTodaySummary implements ReportHandler.
func (h *reportHandlerImpl) MyTodaySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.MyTodaySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AttendanceReport implements ReportHandler.
func (h *reportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	filter := report.Filter{Page: 1}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}
	if fromDate := r.URL.Query().Get("from_date"); fromDate != "" {
		filter.FromDate = &fromDate
	}
	if toDate := r.URL.Query().Get("to_date"); toDate != "" {
		filter.ToDate = &toDate
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil {
			filter.Page = pageNum
		}
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.AttendanceReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
