package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/commutech/commute-backend-go/internal/domain/payroll"
	"github.com/commutech/commute-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.RecordRepository {
	return &payrollRepository{db: db}
}

// CreateRecord implements payroll.RecordRepository. The allowance and
// deduction breakdowns are stored as jsonb; the headline figures get their
// own columns so summaries aggregate without unpacking documents.
func (r *payrollRepository) CreateRecord(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			employee_id, period_month, period_year,
			regular_minutes, overtime_minutes, night_minutes, holiday_minutes,
			base_pay, overtime_pay, night_pay, holiday_pay,
			allowances, gross_pay, deductions, net_pay
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.PeriodMonth,
		record.PeriodYear,
		record.Hours.RegularMinutes,
		record.Hours.OvertimeMinutes,
		record.Hours.NightMinutes,
		record.Hours.HolidayMinutes,
		record.Result.BasePay,
		record.Result.OvertimePay,
		record.Result.NightPay,
		record.Result.HolidayPay,
		record.Result.Allowances,
		record.Result.GrossPay,
		record.Result.Deductions,
		record.Result.NetPay,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return payroll.Record{}, payroll.ErrRecordAlreadyExists
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

// GetRecordByID implements payroll.RecordRepository.
func (r *payrollRepository) GetRecordByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollSelect + `
		WHERE pr.id = $1
	`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

// GetRecordByEmployeePeriod implements payroll.RecordRepository.
func (r *payrollRepository) GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollSelect + `
		WHERE pr.employee_id = $1
		  AND pr.period_month = $2
		  AND pr.period_year = $3
	`

	record, err := scanPayrollRecord(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return record, nil
}

// ListRecords implements payroll.RecordRepository.
func (r *payrollRepository) ListRecords(ctx context.Context, filter payroll.Filter) ([]payroll.Record, int64, error) {
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
		addCondition("pr.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.PeriodMonth != nil {
		addCondition("pr.period_month = $%d", *filter.PeriodMonth)
	}
	if filter.PeriodYear != nil {
		addCondition("pr.period_year = $%d", *filter.PeriodYear)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT pr.id, pr.employee_id, pr.period_month, pr.period_year,
			   pr.regular_minutes, pr.overtime_minutes, pr.night_minutes, pr.holiday_minutes,
			   pr.base_pay, pr.overtime_pay, pr.night_pay, pr.holiday_pay,
			   pr.allowances, pr.gross_pay, pr.deductions, pr.net_pay,
			   pr.created_at, e.name,
			   COUNT(*) OVER() AS total_count
		FROM payroll_records pr
		JOIN employees e ON e.id = pr.employee_id
		%s
		ORDER BY pr.period_year DESC, pr.period_month DESC, e.name ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	var total int64
	for rows.Next() {
		var record payroll.Record
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.PeriodMonth, &record.PeriodYear,
			&record.Hours.RegularMinutes, &record.Hours.OvertimeMinutes,
			&record.Hours.NightMinutes, &record.Hours.HolidayMinutes,
			&record.Result.BasePay, &record.Result.OvertimePay,
			&record.Result.NightPay, &record.Result.HolidayPay,
			&record.Result.Allowances, &record.Result.GrossPay,
			&record.Result.Deductions, &record.Result.NetPay,
			&record.CreatedAt, &record.EmployeeName, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll records: %w", err)
	}

	return records, total, nil
}

// DeleteRecord implements payroll.RecordRepository.
func (r *payrollRepository) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

// GetSummary implements payroll.RecordRepository.
func (r *payrollRepository) GetSummary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(gross_pay), 0),
			   COALESCE(SUM(net_pay), 0)
		FROM payroll_records
		WHERE period_month = $1
		  AND period_year = $2
	`

	summary := payroll.SummaryResponse{
		PeriodMonth: month,
		PeriodYear:  year,
	}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.TotalEmployees,
		&summary.TotalGrossPay,
		&summary.TotalNetPay,
	)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return summary, nil
}

const payrollSelect = `
	SELECT pr.id, pr.employee_id, pr.period_month, pr.period_year,
		   pr.regular_minutes, pr.overtime_minutes, pr.night_minutes, pr.holiday_minutes,
		   pr.base_pay, pr.overtime_pay, pr.night_pay, pr.holiday_pay,
		   pr.allowances, pr.gross_pay, pr.deductions, pr.net_pay,
		   pr.created_at, e.name
	FROM payroll_records pr
	JOIN employees e ON e.id = pr.employee_id
`

func scanPayrollRecord(row pgx.Row) (payroll.Record, error) {
	var record payroll.Record
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.PeriodMonth, &record.PeriodYear,
		&record.Hours.RegularMinutes, &record.Hours.OvertimeMinutes,
		&record.Hours.NightMinutes, &record.Hours.HolidayMinutes,
		&record.Result.BasePay, &record.Result.OvertimePay,
		&record.Result.NightPay, &record.Result.HolidayPay,
		&record.Result.Allowances, &record.Result.GrossPay,
		&record.Result.Deductions, &record.Result.NetPay,
		&record.CreatedAt, &record.EmployeeName,
	)
	if err != nil {
		return payroll.Record{}, err
	}
	return record, nil
}
