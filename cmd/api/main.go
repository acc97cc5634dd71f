package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffhub-dev/hrms-backend-go/internal/config"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/attendance"
	appHTTP "github.com/staffhub-dev/hrms-backend-go/internal/handler/http"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/cron"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/database"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/geocode"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/jwt"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/logging"
	"github.com/staffhub-dev/hrms-backend-go/internal/pkg/storage"
	"github.com/staffhub-dev/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-dev/hrms-backend-go/internal/service/attendance"
	authService "github.com/staffhub-dev/hrms-backend-go/internal/service/auth"
	"github.com/staffhub-dev/hrms-backend-go/internal/service/file"
	leaveService "github.com/staffhub-dev/hrms-backend-go/internal/service/leave"
	"github.com/staffhub-dev/hrms-backend-go/internal/service/master"
	notificationService "github.com/staffhub-dev/hrms-backend-go/internal/service/notification"
	payrollService "github.com/staffhub-dev/hrms-backend-go/internal/service/payroll"
	reportService "github.com/staffhub-dev/hrms-backend-go/internal/service/report"
	userService "github.com/staffhub-dev/hrms-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.App.LogLevel, cfg.App.Env)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("database connection failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	geocoder := geocode.NewNominatimClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, cfg.Geocode.Timeout)

	var store storage.Storage
	switch cfg.Storage.Type {
	case "local":
		store, err = storage.NewLocal(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			logger.Error("storage init failed", slog.Any("error", err))
			os.Exit(1)
		}
	default:
		logger.Error("unsupported storage type", slog.String("type", cfg.Storage.Type))
		os.Exit(1)
	}

	notifier := notificationService.NewService(notificationRepo, userRepo, notificationService.Config{}, logger)

	rules := attendance.Rules{
		LateCutoffHour:   cfg.Attendance.LateCutoffHour,
		LateCutoffMinute: cfg.Attendance.LateCutoffMinute,
		FullDayHours:     cfg.Attendance.FullDayHours,
	}
	attendanceSvc := attendanceService.NewService(attendanceRepo, branchRepo, holidayRepo, userRepo, notifier, geocoder, rules, logger)
	authSvc := authService.NewService(userRepo, jwtService, logger)
	fileSvc := file.NewService(store)
	leaveSvc := leaveService.NewService(db, leaveRepo, userRepo, notifier, logger)
	masterSvc := master.NewService(branchRepo, holidayRepo, logger)
	payrollSvc := payrollService.NewService(payrollRepo, attendanceRepo, leaveRepo, userRepo, notifier, payrollService.Config{
		DaysPerMonth:   cfg.Payroll.DaysPerMonth,
		AbsencePenalty: cfg.Payroll.AbsencePenalty,
	}, logger)
	reportSvc := reportService.NewService(attendanceRepo, userRepo, leaveRepo, holidayRepo, branchRepo, reportService.Config{
		DaysPerMonth:   cfg.Payroll.DaysPerMonth,
		AbsencePenalty: cfg.Payroll.AbsencePenalty,
	}, logger)
	userSvc := userService.NewService(userRepo, branchRepo, cfg.Leave.AnnualAllotment, logger)

	scheduler := cron.NewScheduler(logger)
	attendanceJobs := cron.NewAttendanceJobs(attendanceSvc, logger)
	scheduler.AddJob("mark-absentees", time.Hour, attendanceJobs.MarkAbsentees)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, logger, cfg.App.AllowedOrigins, cfg.Storage.BasePath, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc, fileSvc),
		Master:       appHTTP.NewMasterHandler(masterSvc),
		Notification: appHTTP.NewNotificationHandler(notifier),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		User:         appHTTP.NewUserHandler(userSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := notifier.Shutdown(shutdownCtx); err != nil {
		logger.Error("notifier shutdown failed", slog.Any("error", err))
	}
}
