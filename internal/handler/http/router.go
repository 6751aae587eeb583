package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tracklab/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	timesheetHandler TimesheetHandler,
	blockerHandler BlockerHandler,
	holidayHandler HolidayHandler,
	employeeHandler EmployeeHandler,
	managerHandler ManagerMappingHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.RefreshToken)
		r.Post("/logout", authHandler.Logout)
		r.Route("/login/oauth", func(r chi.Router) {
			r.Get("/google", authHandler.LoginWithGoogle)
		})
		r.Route("/oauth/callback", func(r chi.Router) {
			r.Get("/google", authHandler.OAuthCallbackGoogle)
		})
	})

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

		r.Route("/api/employee-attendance", func(r chi.Router) {
			r.Get("/monthly-details/{employeeID}/{month}/{year}", attendanceHandler.MonthlyDetails)
			r.Get("/timesheet/{employeeID}/{month}/{year}", timesheetHandler.Monthly)
			r.Get("/timesheet-range/{employeeID}", timesheetHandler.Range)
			r.Get("/download-report", timesheetHandler.DownloadReport)

			r.Post("/", attendanceHandler.Create)
			r.Put("/{id}", attendanceHandler.Update)
			r.Put("/logout-time/{employeeID}", attendanceHandler.SetLogoutTime)
			// Path spelling is a frozen frontend contract.
			r.Post("/attendence-data/{employeeID}", attendanceHandler.BulkUpsert)

			// Manager or admin
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/monthly-details-all/{month}/{year}", attendanceHandler.MonthlyDetailsAll)
			})
		})

		r.Route("/api/timesheet-blockers", func(r chi.Router) {
			r.Get("/employee/{employeeID}", blockerHandler.ListByEmployee)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", blockerHandler.Create)
				r.Delete("/{id}", blockerHandler.Delete)
			})
		})

		r.Route("/api/v1/employee-details", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.Get)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", employeeHandler.Create)
				r.Put("/{id}", employeeHandler.Update)
				r.Delete("/{id}", employeeHandler.Delete)
			})
		})

		r.Route("/api/manager-mapping", func(r chi.Router) {
			r.Get("/manager/{managerID}", managerHandler.ListByManager)
			r.Get("/employee/{employeeID}", managerHandler.ListByEmployee)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", managerHandler.Create)
				r.Delete("/{id}", managerHandler.Delete)
			})
		})

		r.Route("/api/masterHoliday", func(r chi.Router) {
			r.Get("/", holidayHandler.List)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", holidayHandler.Create)
				r.Delete("/{id}", holidayHandler.Delete)
			})
		})
	})

	return r
}
