package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lavorotracker/paycalc-backend-go/internal/config"
	"github.com/lavorotracker/paycalc-backend-go/internal/handler/http/middleware"
	"github.com/lavorotracker/paycalc-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	timesheetHandler TimesheetHandler,
	settingsHandler SettingsHandler,
	onCallHandler OnCallHandler,
	earningsHandler EarningsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "paycalc"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/records", func(r chi.Router) {
				r.Post("/", timesheetHandler.Save)
				r.Get("/", timesheetHandler.ListMonth)
				r.Get("/{id}", timesheetHandler.Get)
				r.Delete("/{id}", timesheetHandler.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.Get)
				r.Put("/", settingsHandler.Update)
			})

			r.Route("/oncall", func(r chi.Router) {
				r.Post("/", onCallHandler.Mark)
				r.Get("/", onCallHandler.ListMonth)
				r.Delete("/{date}", onCallHandler.Unmark)
			})

			r.Route("/earnings", func(r chi.Router) {
				r.Get("/daily", earningsHandler.Daily)
				r.Get("/monthly", earningsHandler.Monthly)
				r.Post("/net-estimate", earningsHandler.EstimateNet)
			})
		})
	})
	return r
}
