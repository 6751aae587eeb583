package main

import (
	"fmt"
	"net/http"

	"github.com/tracklab/timesheet-backend-go/internal/config"
	"github.com/tracklab/timesheet-backend-go/internal/domain/timesheet"
	appHTTP "github.com/tracklab/timesheet-backend-go/internal/handler/http"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/cron"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/database"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/jwt"
	"github.com/tracklab/timesheet-backend-go/internal/pkg/oauth"
	"github.com/tracklab/timesheet-backend-go/internal/repository/postgresql"
	attendanceService "github.com/tracklab/timesheet-backend-go/internal/service/attendance"
	authService "github.com/tracklab/timesheet-backend-go/internal/service/auth"
	blockerService "github.com/tracklab/timesheet-backend-go/internal/service/blocker"
	employeeService "github.com/tracklab/timesheet-backend-go/internal/service/employee"
	holidayService "github.com/tracklab/timesheet-backend-go/internal/service/holiday"
	managerService "github.com/tracklab/timesheet-backend-go/internal/service/manager"
	reportService "github.com/tracklab/timesheet-backend-go/internal/service/report"
	timesheetService "github.com/tracklab/timesheet-backend-go/internal/service/timesheet"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	blockerRepo := postgresql.NewBlockerRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	mappingRepo := postgresql.NewManagerMappingRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	editPolicy := timesheet.EditPolicy{EditableMonths: cfg.Timesheet.EditableMonths}

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, blockerRepo, mappingRepo, editPolicy)
	timesheetSvc := timesheetService.NewTimesheetService(attendanceRepo, holidayRepo, blockerRepo, editPolicy)
	reportSvc := reportService.NewReportService(timesheetSvc, employeeRepo)
	blockerSvc := blockerService.NewBlockerService(blockerRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	managerSvc := managerService.NewMappingService(mappingRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, reportSvc)
	blockerHandler := appHTTP.NewBlockerHandler(blockerSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	managerHandler := appHTTP.NewManagerMappingHandler(managerSvc)

	scheduler := cron.NewScheduler()
	timesheetJobs := cron.NewTimesheetJobs(attendanceRepo, blockerRepo)
	timesheetJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		jwtService,
		authHandler,
		attendanceHandler,
		timesheetHandler,
		blockerHandler,
		holidayHandler,
		employeeHandler,
		managerHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
