package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/timebank-backend/internal/api/handlers"
	"github.com/baharkarakas/timebank-backend/internal/metrics"
	"github.com/baharkarakas/timebank-backend/internal/middleware"
)

type RouterDeps struct {
	Logger        *slog.Logger
	CORSOrigins   []string
	Authenticator middleware.Authenticator
	Users         handlers.UserService
	Auth          handlers.AuthService
	Balances      handlers.BalanceService
	Health        handlers.HealthService
}

func NewRouter(d RouterDeps) http.Handler {
	origins := d.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID(d.Logger), middleware.Recover, middleware.Log, middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	// health & metrics
	r.Get("/health", handlers.NewHealthHandler(d.Health))
	r.Handle("/metrics", metrics.Handler())

	ah := handlers.NewAuthHandler(d.Users, d.Auth)
	r.Post("/register", ah.Register)
	r.Post("/login", ah.Login)
	r.Post("/logout", ah.Logout)
	r.Post("/token/refresh", ah.Refresh)

	bh := handlers.NewBalanceHandler(d.Balances)
	r.Route("/users/{username}/time", func(r chi.Router) {
		r.Use(middleware.Auth(d.Authenticator), middleware.RequireOwner("username"))
		r.Get("/", bh.Get)
		r.Patch("/", bh.Increment)
		r.Patch("/update", bh.Overwrite)
	})

	return r
}
