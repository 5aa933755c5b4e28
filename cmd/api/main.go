package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/staffgate/attendance-gate-go/internal/config"
	"github.com/staffgate/attendance-gate-go/internal/domain/attendance"
	appHTTP "github.com/staffgate/attendance-gate-go/internal/handler/http"
	"github.com/staffgate/attendance-gate-go/internal/pkg/cron"
	"github.com/staffgate/attendance-gate-go/internal/pkg/database"
	"github.com/staffgate/attendance-gate-go/internal/pkg/email"
	"github.com/staffgate/attendance-gate-go/internal/pkg/formapi"
	"github.com/staffgate/attendance-gate-go/internal/pkg/jwt"
	"github.com/staffgate/attendance-gate-go/internal/pkg/sse"
	"github.com/staffgate/attendance-gate-go/internal/repository/postgresql"
	attendanceService "github.com/staffgate/attendance-gate-go/internal/service/attendance"
	historyService "github.com/staffgate/attendance-gate-go/internal/service/history"
	staffService "github.com/staffgate/attendance-gate-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, database.PoolOptions{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	staffRepo := postgresql.NewStaffRepository(db)
	submissionRepo := postgresql.NewSubmissionRepository(db)
	kvStore := postgresql.NewKVStoreRepository(db)
	stateStore := attendance.NewStateStore(kvStore)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	formClient := formapi.NewClient(cfg.Sink, cfg.History)
	formClient.ValidateFieldMap()

	var emailService email.EmailService
	if cfg.SMTP.Host != "" {
		emailService, err = email.NewEmailService(cfg.SMTP)
		if err != nil {
			log.Fatal("Failed to initialize email service:", err)
		}
	}

	staffSvc := staffService.NewStaffService(staffRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(
		cfg.Gate,
		cfg.Rollover,
		stateStore,
		staffRepo,
		submissionRepo,
		formClient,
		hub,
	)
	historySvc := historyService.NewHistoryService(formClient)

	staffHandler := appHTTP.NewStaffHandler(staffSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	historyHandler := appHTTP.NewHistoryHandler(historySvc)
	eventsHandler := appHTTP.NewEventsHandler(JWTService, hub)

	router := appHTTP.NewRouter(
		cfg.App,
		JWTService,
		staffHandler,
		attendanceHandler,
		historyHandler,
		eventsHandler,
	)

	sweepInterval, err := time.ParseDuration(cfg.Rollover.SweepInterval)
	if err != nil {
		log.Fatal("Invalid rollover sweep interval:", err)
	}
	scheduler := cron.NewScheduler()
	rolloverJobs := cron.NewRolloverJobs(staffRepo, stateStore, submissionRepo, formClient, emailService, cfg.Rollover)
	rolloverJobs.RegisterJobs(scheduler, sweepInterval)
	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
