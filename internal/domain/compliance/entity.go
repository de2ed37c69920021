package compliance

// Status classifies one employee-week against the configured hour limits.
type Status string

const (
	StatusGood      Status = "good"
	StatusWarning   Status = "warning"
	StatusViolation Status = "violation"
)

// Result is the outcome of checking one employee's week. WeeklyHours and
// WeeklyOvertime are in hours; ContinuousWorkDays is the count of complete
// records in the window, a documented simplification of true
// consecutive-day detection.
type Result struct {
	EmployeeID         string   `json:"employee_id"`
	EmployeeName       string   `json:"employee_name,omitempty"`
	WeekStart          string   `json:"week_start"`
	WeeklyHours        float64  `json:"weekly_hours"`
	WeeklyOvertime     float64  `json:"weekly_overtime"`
	ContinuousWorkDays int      `json:"continuous_work_days"`
	NightWorkDays      int      `json:"night_work_days"`
	Status             Status   `json:"status"`
	Violations         []string `json:"violations"`
	Warnings           []string `json:"warnings"`
	Info               []string `json:"info"`
}
