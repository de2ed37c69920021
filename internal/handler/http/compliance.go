package http

import (
	"net/http"

	"github.com/commutech/commute-backend-go/internal/domain/compliance"
	"github.com/commutech/commute-backend-go/internal/handler/http/response"
)

type ComplianceHandler interface {
	CheckWeek(w http.ResponseWriter, r *http.Request)
	CheckAllEmployees(w http.ResponseWriter, r *http.Request)
}

type complianceHandlerImpl struct {
	complianceService compliance.Service
}

func NewComplianceHandler(complianceService compliance.Service) ComplianceHandler {
	return &complianceHandlerImpl{
		complianceService: complianceService,
	}
}

// CheckWeek implements ComplianceHandler.
func (h *complianceHandlerImpl) CheckWeek(w http.ResponseWriter, r *http.Request) {
	req := compliance.WeeklyCheckRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		WeekStart:  r.URL.Query().Get("week_start"),
	}

	result, err := h.complianceService.CheckWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckAllEmployees implements ComplianceHandler.
func (h *complianceHandlerImpl) CheckAllEmployees(w http.ResponseWriter, r *http.Request) {
	weekStart := r.URL.Query().Get("week_start")
	if weekStart == "" {
		response.BadRequest(w, "week_start is required", nil)
		return
	}

	result, err := h.complianceService.CheckAllEmployees(r.Context(), weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
