package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-engine-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-engine-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-engine-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/attendance-engine-go/internal/service/attendance"
	calendarService "github.com/cmlabs-hris/attendance-engine-go/internal/service/calendar"
	leaveService "github.com/cmlabs-hris/attendance-engine-go/internal/service/leave"
	reconciliationService "github.com/cmlabs-hris/attendance-engine-go/internal/service/reconciliation"
	shiftService "github.com/cmlabs-hris/attendance-engine-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()

	if err := database.RunMigrations(dsn); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn, database.PoolConfig{
		MaxConns:    int32(cfg.Database.MaxConns),
		MinConns:    int32(cfg.Database.MinConns),
		PingTimeout: cfg.Database.PingTimeout,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	clockEventRepo := postgresql.NewClockEventRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	calendarOverrideRepo := postgresql.NewCalendarOverrideRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		clockEventRepo,
		shiftAssignmentRepo,
		cfg.Attendance.GracePeriodMinutes,
	)
	shiftSvc := shiftService.NewShiftService(db, shiftAssignmentRepo)
	calendarSvc := calendarService.NewCalendarService(db, calendarOverrideRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRecordRepo)
	reconciliationSvc := reconciliationService.NewReconciliationService(
		db,
		clockEventRepo,
		shiftAssignmentRepo,
		calendarOverrideRepo,
		leaveRecordRepo,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reconciliationSvc)

	router := appHTTP.NewRouter(
		attendanceHandler,
		shiftHandler,
		calendarHandler,
		leaveHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
