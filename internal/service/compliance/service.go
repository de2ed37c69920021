package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/domain/compliance"
	"github.com/commutech/commute-backend-go/internal/domain/employee"
)

type ComplianceServiceImpl struct {
	checker              *Checker
	attendanceRepository attendance.RecordRepository
	employee.EmployeeRepository
}

func NewComplianceService(
	checker *Checker,
	attendanceRepository attendance.RecordRepository,
	employeeRepository employee.EmployeeRepository,
) compliance.Service {
	return &ComplianceServiceImpl{
		checker:              checker,
		attendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// CheckWeek implements compliance.Service.
func (s *ComplianceServiceImpl) CheckWeek(ctx context.Context, req compliance.WeeklyCheckRequest) (compliance.Result, error) {
	if err := req.Validate(); err != nil {
		return compliance.Result{}, err
	}

	weekStart, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		return compliance.Result{}, fmt.Errorf("invalid week_start: %w", err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return compliance.Result{}, err
	}

	result, err := s.checkEmployeeWeek(ctx, emp, weekStart)
	if err != nil {
		return compliance.Result{}, err
	}

	return result, nil
}

// CheckAllEmployees implements compliance.Service.
func (s *ComplianceServiceImpl) CheckAllEmployees(ctx context.Context, weekStartStr string) (compliance.WeeklyOverviewResponse, error) {
	weekStart, err := time.Parse("2006-01-02", weekStartStr)
	if err != nil {
		return compliance.WeeklyOverviewResponse{}, fmt.Errorf("invalid week_start: %w", err)
	}

	employees, _, err := s.EmployeeRepository.List(ctx, true)
	if err != nil {
		return compliance.WeeklyOverviewResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	overview := compliance.WeeklyOverviewResponse{
		WeekStart: weekStart.Format("2006-01-02"),
		Results:   make([]compliance.Result, 0, len(employees)),
	}

	for _, emp := range employees {
		result, err := s.checkEmployeeWeek(ctx, emp, weekStart)
		if err != nil {
			return compliance.WeeklyOverviewResponse{}, err
		}

		switch result.Status {
		case compliance.StatusViolation:
			overview.Violations++
		case compliance.StatusWarning:
			overview.Warnings++
		}
		overview.Results = append(overview.Results, result)
	}

	return overview, nil
}

func (s *ComplianceServiceImpl) checkEmployeeWeek(ctx context.Context, emp employee.Employee, weekStart time.Time) (compliance.Result, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)

	records, err := s.attendanceRepository.ListByEmployeeAndRange(ctx, emp.ID, weekStart, weekEnd)
	if err != nil {
		return compliance.Result{}, fmt.Errorf("failed to list attendance for employee %s: %w", emp.ID, err)
	}

	result, err := s.checker.CheckWeek(emp.ID, records)
	if err != nil {
		return compliance.Result{}, fmt.Errorf("failed to check week for employee %s: %w", emp.ID, err)
	}

	result.EmployeeName = emp.Name
	result.WeekStart = weekStart.Format("2006-01-02")

	return result, nil
}
