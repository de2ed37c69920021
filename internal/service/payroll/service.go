package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/domain/employee"
	"github.com/commutech/commute-backend-go/internal/domain/payroll"
	"github.com/commutech/commute-backend-go/internal/pkg/database"
	"github.com/commutech/commute-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type PayrollServiceImpl struct {
	db         *database.DB
	calculator *Calculator
	payroll.RecordRepository
	employee.EmployeeRepository
	attendanceRepository attendance.RecordRepository
}

func NewPayrollService(
	db *database.DB,
	calculator *Calculator,
	recordRepository payroll.RecordRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.RecordRepository,
) payroll.Service {
	return &PayrollServiceImpl{
		db:                   db,
		calculator:           calculator,
		RecordRepository:     recordRepository,
		EmployeeRepository:   employeeRepository,
		attendanceRepository: attendanceRepository,
	}
}

// Generate implements payroll.Service.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) ([]payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	periodStart := time.Date(req.PeriodYear, time.Month(req.PeriodMonth), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	employees, inputs, err := s.resolveEmployees(ctx, req.Employees)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.RecordResponse, 0, len(employees))
	for _, emp := range employees {
		emp := emp
		err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			_, err := s.RecordRepository.GetRecordByEmployeePeriod(txCtx, emp.ID, req.PeriodMonth, req.PeriodYear)
			if err == nil {
				// Already generated for this period, skip.
				return nil
			}
			if !errors.Is(err, payroll.ErrRecordNotFound) {
				return fmt.Errorf("failed to check existing payroll record: %w", err)
			}

			records, err := s.attendanceRepository.ListByEmployeeAndRange(txCtx, emp.ID, periodStart, periodEnd)
			if err != nil {
				return fmt.Errorf("failed to list attendance for employee %s: %w", emp.ID, err)
			}

			hours, err := s.categorizePeriod(records)
			if err != nil {
				return fmt.Errorf("failed to categorize hours for employee %s: %w", emp.ID, err)
			}

			input := inputs[emp.ID]
			result, err := s.calculator.Calculate(emp.HourlyRate, hours, input.Allowances, input.Deductions)
			if err != nil {
				return fmt.Errorf("failed to calculate payroll for employee %s: %w", emp.ID, err)
			}

			created, err := s.RecordRepository.CreateRecord(txCtx, payroll.Record{
				EmployeeID:  emp.ID,
				PeriodMonth: req.PeriodMonth,
				PeriodYear:  req.PeriodYear,
				Hours:       hours,
				Result:      result,
			})
			if err != nil {
				if errors.Is(err, payroll.ErrRecordAlreadyExists) {
					return nil
				}
				return fmt.Errorf("failed to create payroll record for employee %s: %w", emp.ID, err)
			}
			created.EmployeeName = &emp.Name

			responses = append(responses, mapToPayrollRecordResponse(created))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return responses, nil
}

// resolveEmployees expands the request into the concrete employee set. An
// empty input list means every active employee with zero allowances and
// deductions.
func (s *PayrollServiceImpl) resolveEmployees(
	ctx context.Context,
	requested []payroll.EmployeePayrollInput,
) ([]employee.Employee, map[string]payroll.EmployeePayrollInput, error) {
	inputs := make(map[string]payroll.EmployeePayrollInput, len(requested))

	if len(requested) == 0 {
		employees, _, err := s.EmployeeRepository.List(ctx, true)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list active employees: %w", err)
		}
		return employees, inputs, nil
	}

	ids := make([]string, 0, len(requested))
	for _, input := range requested {
		ids = append(ids, input.EmployeeID)
		inputs[input.EmployeeID] = input
	}

	employees, err := s.EmployeeRepository.GetActiveByIDs(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve employees: %w", err)
	}
	if len(employees) != len(ids) {
		return nil, nil, employee.ErrEmployeeNotFound
	}

	return employees, inputs, nil
}

// categorizePeriod folds every complete attendance record of a period into
// one work-hours breakdown. Sundays count as holiday work.
func (s *PayrollServiceImpl) categorizePeriod(records []attendance.Record) (payroll.WorkHoursBreakdown, error) {
	var hours payroll.WorkHoursBreakdown
	for _, record := range records {
		if !record.IsComplete() {
			continue
		}

		holiday := record.Date.Weekday() == time.Sunday
		day, err := s.calculator.CategorizeDay(*record.CheckIn, *record.CheckOut, record.TotalBreakMinutes, holiday)
		if err != nil {
			return payroll.WorkHoursBreakdown{}, fmt.Errorf("record %s: %w", record.Date.Format("2006-01-02"), err)
		}
		hours = hours.Add(day)
	}
	return hours, nil
}

// GetRecord implements payroll.Service.
func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.RecordRepository.GetRecordByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	return mapToPayrollRecordResponse(record), nil
}

// ListRecords implements payroll.Service.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, filter payroll.Filter) (payroll.ListRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return payroll.ListRecordResponse{}, err
	}

	records, total, err := s.RecordRepository.ListRecords(ctx, filter)
	if err != nil {
		return payroll.ListRecordResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapToPayrollRecordResponse(record))
	}

	return payroll.ListRecordResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

// DeleteRecord implements payroll.Service.
func (s *PayrollServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if _, err := s.RecordRepository.GetRecordByID(ctx, id); err != nil {
		return err
	}

	return s.RecordRepository.DeleteRecord(ctx, id)
}

// GetSummary implements payroll.Service.
func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	if month < 1 || month > 12 || year < 2000 || year > 2100 {
		return payroll.SummaryResponse{}, payroll.ErrInvalidPeriod
	}

	return s.RecordRepository.GetSummary(ctx, month, year)
}

func mapToPayrollRecordResponse(record payroll.Record) payroll.RecordResponse {
	resp := payroll.RecordResponse{
		ID:          record.ID,
		EmployeeID:  record.EmployeeID,
		PeriodMonth: record.PeriodMonth,
		PeriodYear:  record.PeriodYear,
		Hours:       record.Hours,
		Result:      record.Result,
		CreatedAt:   record.CreatedAt.Format(time.RFC3339),
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	return resp
}
