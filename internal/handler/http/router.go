package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/commutech/commute-backend-go/internal/config"
	"github.com/commutech/commute-backend-go/internal/handler/http/middleware"
	"github.com/commutech/commute-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	complianceHandler ComplianceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "commute-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Post("/break", attendanceHandler.ToggleBreak)
				r.Get("/today", attendanceHandler.GetToday)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Get("/today/{employeeId}", attendanceHandler.GetToday)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/generate", payrollHandler.Generate)
				r.Get("/records", payrollHandler.ListRecords)
				r.Get("/records/{id}", payrollHandler.GetRecord)
				r.Delete("/records/{id}", payrollHandler.DeleteRecord)
				r.Get("/summary", payrollHandler.GetSummary)
			})

			r.Route("/compliance", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/weekly", complianceHandler.CheckWeek)
				r.Get("/weekly/all", complianceHandler.CheckAllEmployees)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/monthly", reportHandler.GetMonthly)
				r.Get("/monthly/export", reportHandler.ExportMonthly)
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
