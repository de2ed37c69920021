package main

import (
	"fmt"
	"net/http"

	"github.com/commutech/commute-backend-go/internal/config"
	appHTTP "github.com/commutech/commute-backend-go/internal/handler/http"
	"github.com/commutech/commute-backend-go/internal/pkg/database"
	"github.com/commutech/commute-backend-go/internal/pkg/jwt"
	"github.com/commutech/commute-backend-go/internal/repository/postgresql"
	attendanceService "github.com/commutech/commute-backend-go/internal/service/attendance"
	complianceService "github.com/commutech/commute-backend-go/internal/service/compliance"
	employeeService "github.com/commutech/commute-backend-go/internal/service/employee"
	payrollService "github.com/commutech/commute-backend-go/internal/service/payroll"
	reportService "github.com/commutech/commute-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := payrollService.NewCalculator(cfg.Payroll, cfg.Compliance)
	checker := complianceService.NewChecker(cfg.Compliance)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, calculator, payrollRepo, employeeRepo, attendanceRepo)
	complianceSvc := complianceService.NewComplianceService(checker, attendanceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(checker, attendanceRepo, payrollRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	complianceHandler := appHTTP.NewComplianceHandler(complianceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		attendanceHandler,
		employeeHandler,
		payrollHandler,
		complianceHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
