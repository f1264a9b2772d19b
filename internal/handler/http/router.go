package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	attendanceHandler AttendanceHandler,
	shiftHandler ShiftHandler,
	calendarHandler CalendarHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-engine"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/clock-in", attendanceHandler.ClockIn)
			r.Post("/clock-out", attendanceHandler.ClockOut)
			r.Get("/", attendanceHandler.List)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/", shiftHandler.Create)
			r.Get("/", shiftHandler.List)
		})

		r.Route("/calendar-overrides", func(r chi.Router) {
			r.Post("/", calendarHandler.Upsert)
			r.Get("/", calendarHandler.List)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Post("/", leaveHandler.Create)
			r.Get("/", leaveHandler.List)
			r.Patch("/{id}/status", leaveHandler.UpdateStatus)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/daily", reportHandler.Daily)
			r.Get("/monthly-summary", reportHandler.MonthlySummary)
		})
	})

	return r
}
