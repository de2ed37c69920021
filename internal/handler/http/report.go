package http

import (
	"net/http"
	"strconv"

	"github.com/commutech/commute-backend-go/internal/domain/report"
	"github.com/commutech/commute-backend-go/internal/handler/http/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	ExportMonthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetMonthly implements ReportHandler.
func (h *reportHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	req := parseMonthlyReportRequest(r)

	result, err := h.reportService.GenerateMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthly implements ReportHandler.
func (h *reportHandlerImpl) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	req := parseMonthlyReportRequest(r)

	data, filename, err := h.reportService.ExportMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, xlsxContentType, data)
}

func parseMonthlyReportRequest(r *http.Request) report.MonthlyReportRequest {
	query := r.URL.Query()

	month, _ := strconv.Atoi(query.Get("month"))
	year, _ := strconv.Atoi(query.Get("year"))

	return report.MonthlyReportRequest{
		Month:  month,
		Year:   year,
		SortBy: query.Get("sort_by"),
	}
}
