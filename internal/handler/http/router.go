package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffgate/attendance-gate-go/internal/config"
	"github.com/staffgate/attendance-gate-go/internal/handler/http/middleware"
	"github.com/staffgate/attendance-gate-go/internal/pkg/jwt"
)

func NewRouter(
	cfg config.AppConfig,
	JWTService jwt.Service,
	staffHandler StaffHandler,
	attendanceHandler AttendanceHandler,
	historyHandler HistoryHandler,
	eventsHandler EventsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-gate"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/staff", func(r chi.Router) {
			r.Post("/register", staffHandler.Register)
			r.Post("/login", staffHandler.Login)
		})

		// The stream authenticates with its own short-lived token in the
		// query string, outside the access-token middleware.
		r.Get("/events/stream", eventsHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/status", attendanceHandler.Status)
				r.Post("/check", attendanceHandler.Check)
				r.Route("/history", func(r chi.Router) {
					r.Get("/", historyHandler.List)
					r.Get("/export", historyHandler.Export)
				})
			})

			r.Post("/events/token", eventsHandler.Token)
		})
	})
	return r
}
