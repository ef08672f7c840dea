package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/alert"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/appointment"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/chat"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/metrics"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/record"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/user"
)

type RouterConfig struct {
	Users        *user.Service
	Appointments *appointment.Service
	Records      *record.Service
	Alerts       *alert.Service
	Chat         *chat.Controller

	PgPool  *pgxpool.Pool
	Redis   *redis.Client
	Env     string
	Version string

	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(metrics.Middleware)

	limiter := NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Health and metrics endpoints
	health := NewHealthHandler(cfg.PgPool, cfg.Redis, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)
	r.Handle("/metrics", metrics.Handler())

	// Public auth endpoints, rate limited per IP
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/auth/register", registerHandler(cfg.Users))
		r.Post("/auth/login", loginHandler(cfg.Users))
	})

	// Everything below requires a session token
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.JWTSecret))

		r.Post("/auth/logout", logoutHandler(cfg.Users))

		r.Get("/profile", getProfileHandler(cfg.Users))
		r.Put("/profile", updateProfileHandler(cfg.Users))
		r.Get("/profile/language", getLanguageHandler(cfg.Users))
		r.Put("/profile/language", setLanguageHandler(cfg.Users))

		r.Post("/appointments", bookAppointmentHandler(cfg.Appointments))
		r.Get("/appointments", listAppointmentsHandler(cfg.Appointments))

		r.Post("/records", createRecordHandler(cfg.Records))
		r.Get("/records", listRecordsHandler(cfg.Records))
		r.Post("/records/{id}/medications", addMedicationHandler(cfg.Records))
		r.Post("/records/{id}/files", uploadFileHandler(cfg.Records))
		r.Get("/files/{id}", downloadFileHandler(cfg.Records))

		r.Get("/alerts", listAlertsHandler(cfg.Alerts))
		r.Post("/alerts/{id}/read", markAlertReadHandler(cfg.Alerts))

		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/chat/messages", sendChatMessageHandler(cfg.Chat))
		})
		r.Get("/chat/messages", chatHistoryHandler(cfg.Chat))
		r.Delete("/chat/messages", clearChatHandler(cfg.Chat))
	})

	return r
}
