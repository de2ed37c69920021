package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/domain/employee"
	"github.com/commutech/commute-backend-go/internal/pkg/timemath"
	"github.com/go-chi/jwtauth/v5"
)

// maxBreakMinutes caps the accumulated break total of one day. A break left
// open across midnight would otherwise swallow the whole next day.
const maxBreakMinutes = 1440

type AttendanceServiceImpl struct {
	attendance.RecordRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	recordRepository attendance.RecordRepository,
	employeeRepository employee.EmployeeRepository,
) attendance.Service {
	return &AttendanceServiceImpl{
		RecordRepository:   recordRepository,
		EmployeeRepository: employeeRepository,
	}
}

// CheckIn implements attendance.Service.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !emp.IsActive {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	now := time.Now().UTC()
	date, clock, err := resolveStamp(req.Date, req.Time, now)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := s.RecordRepository.Create(ctx, attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &clock,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	created.EmployeeName = &emp.Name

	return mapToRecordResponse(created), nil
}

// CheckOut implements attendance.Service.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now().UTC()
	date, clock, err := resolveStamp(req.Date, req.Time, now)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	// An open break ends implicitly at check-out. The fold uses the
	// check-out stamp itself, so a forwarded kiosk capture does not accrue
	// break time up to the server's receive moment.
	if record.BreakStart != nil {
		checkOutAt, err := clockTime(date, clock)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to resolve check-out time: %w", err)
		}
		record.TotalBreakMinutes = foldBreak(record.TotalBreakMinutes, *record.BreakStart, checkOutAt)
		record.BreakStart = nil
	}

	record.CheckOut = &clock
	worked, err := timemath.WorkedMinutes(*record.CheckIn, clock, record.TotalBreakMinutes)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to compute worked minutes: %w", err)
	}
	record.WorkedMinutes = &worked
	record.UpdatedAt = now

	if err := s.RecordRepository.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapToRecordResponse(*record), nil
}

// ToggleBreak implements attendance.Service. A first call opens a break,
// the next one closes it and accumulates the elapsed minutes.
func (s *AttendanceServiceImpl) ToggleBreak(ctx context.Context) (attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := time.Now().UTC()
	date := truncateToDate(now)

	record, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil || record.CheckIn == nil {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	if record.BreakStart == nil {
		record.BreakStart = &now
	} else {
		record.TotalBreakMinutes = foldBreak(record.TotalBreakMinutes, *record.BreakStart, now)
		record.BreakStart = nil
	}
	record.UpdatedAt = now

	if err := s.RecordRepository.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapToRecordResponse(*record), nil
}

// GetToday implements attendance.Service.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (attendance.RecordResponse, error) {
	if employeeID == "" {
		id, err := employeeIDFromContext(ctx)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		employeeID = id
	}

	date := truncateToDate(time.Now().UTC())

	record, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotFound
	}

	return mapToRecordResponse(*record), nil
}

// List implements attendance.Service.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.RecordRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapToRecordResponse(record))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    responses,
	}, nil
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// resolveStamp turns optional date/time overrides into a concrete record
// date and clock, defaulting to the current moment.
func resolveStamp(dateStr, clockStr string, now time.Time) (time.Time, string, error) {
	date := truncateToDate(now)
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return time.Time{}, "", fmt.Errorf("invalid date: %w", err)
		}
		date = parsed
	}

	clock := now.Format("15:04")
	if clockStr != "" {
		clock = clockStr
	}

	return date, clock, nil
}

// clockTime anchors a "HH:MM" clock onto a record date.
func clockTime(date time.Time, clock string) (time.Time, error) {
	minutes, err := timemath.ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(minutes) * time.Minute), nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func foldBreak(total int, start, end time.Time) int {
	elapsed := int(end.Sub(start).Minutes())
	if elapsed < 0 {
		elapsed = 0
	}
	total += elapsed
	if total > maxBreakMinutes {
		total = maxBreakMinutes
	}
	return total
}

func mapToRecordResponse(record attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:                record.ID,
		EmployeeID:        record.EmployeeID,
		Date:              record.Date.Format("2006-01-02"),
		CheckIn:           record.CheckIn,
		CheckOut:          record.CheckOut,
		TotalBreakMinutes: record.TotalBreakMinutes,
		OnBreak:           record.OnBreak(),
		WorkedMinutes:     record.WorkedMinutes,
		CreatedAt:         record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         record.UpdatedAt.Format(time.RFC3339),
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	return resp
}
