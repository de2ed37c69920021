package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.RecordRepository.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, check_in, check_out,
			total_break_minutes, break_start, worked_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.TotalBreakMinutes,
		record.BreakStart,
		record.WorkedMinutes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.RecordRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.check_in, ar.check_out,
			   ar.total_break_minutes, ar.break_start, ar.worked_minutes,
			   ar.created_at, ar.updated_at, e.name
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.id = $1
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.CheckIn, &record.CheckOut,
		&record.TotalBreakMinutes, &record.BreakStart, &record.WorkedMinutes,
		&record.CreatedAt, &record.UpdatedAt, &record.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.RecordRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out,
			   total_break_minutes, break_start, worked_minutes,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
	`

	var record attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.CheckIn, &record.CheckOut,
		&record.TotalBreakMinutes, &record.BreakStart, &record.WorkedMinutes,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &record, nil
}

// Update implements attendance.RecordRepository.
func (r *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2, check_out = $3, total_break_minutes = $4,
			break_start = $5, worked_minutes = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.CheckIn,
		record.CheckOut,
		record.TotalBreakMinutes,
		record.BreakStart,
		record.WorkedMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// List implements attendance.RecordRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIndex := 1

	addCondition := func(condition string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(condition, argIndex))
		args = append(args, value)
		argIndex++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		addCondition("ar.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		addCondition("ar.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		addCondition("ar.date <= $%d", *filter.EndDate)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	sortColumns := map[string]string{
		"date":          "ar.date",
		"employee_name": "e.name",
		"check_in":      "ar.check_in",
		"check_out":     "ar.check_out",
	}
	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = "ar.date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT ar.id, ar.employee_id, ar.date, ar.check_in, ar.check_out,
			   ar.total_break_minutes, ar.break_start, ar.worked_minutes,
			   ar.created_at, ar.updated_at, e.name,
			   COUNT(*) OVER() AS total_count
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		%s
		ORDER BY %s %s, ar.id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, sortColumn, sortOrder, argIndex, argIndex+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	var total int64
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.CheckIn, &record.CheckOut,
			&record.TotalBreakMinutes, &record.BreakStart, &record.WorkedMinutes,
			&record.CreatedAt, &record.UpdatedAt, &record.EmployeeName, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, total, nil
}

// ListByEmployeeAndRange implements attendance.RecordRepository.
func (r *attendanceRepository) ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out,
			   total_break_minutes, break_start, worked_minutes,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.CheckIn, &record.CheckOut,
			&record.TotalBreakMinutes, &record.BreakStart, &record.WorkedMinutes,
			&record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// ListByRange implements attendance.RecordRepository.
func (r *attendanceRepository) ListByRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.check_in, ar.check_out,
			   ar.total_break_minutes, ar.break_start, ar.worked_minutes,
			   ar.created_at, ar.updated_at, e.name
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.date BETWEEN $1 AND $2
		ORDER BY e.name ASC, ar.date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var record attendance.Record
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.CheckIn, &record.CheckOut,
			&record.TotalBreakMinutes, &record.BreakStart, &record.WorkedMinutes,
			&record.CreatedAt, &record.UpdatedAt, &record.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}
