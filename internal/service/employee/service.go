package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/commutech/commute-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:       req.Name,
		HourlyRate: req.HourlyRate,
		IsActive:   true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapToEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, activeOnly bool) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.EmployeeRepository.List(ctx, activeOnly)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapToEmployeeResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Employees:  responses,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = req.HourlyRate
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	emp.UpdatedAt = time.Now().UTC()

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapToEmployeeResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}

	return s.EmployeeRepository.Delete(ctx, id)
}

func mapToEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		Name:       emp.Name,
		HourlyRate: emp.HourlyRate,
		IsActive:   emp.IsActive,
		CreatedAt:  emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  emp.UpdatedAt.Format(time.RFC3339),
	}
}
