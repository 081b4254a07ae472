package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hugh/orgspace/internal/api/handlers"
	"github.com/hugh/orgspace/internal/api/middleware"
	"github.com/hugh/orgspace/internal/auth"
	"github.com/hugh/orgspace/internal/org"
	"gorm.io/gorm"
)

type Router struct {
	chi.Router
}

type RouterConfig struct {
	DB             *gorm.DB
	Logger         *slog.Logger
	JWTService     *auth.JWTService
	AuthService    *auth.Service
	OrgService     *org.Service
	AllowedOrigins []string // CORS allowed origins
}

func NewRouter(cfg RouterConfig) *Router {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	authHandler := handlers.NewAuthHandler(cfg.AuthService)
	userHandler := handlers.NewUserHandler(cfg.AuthService)
	orgHandler := handlers.NewOrganisationHandler(cfg.OrgService)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hello"))
	})
	r.Get("/health", healthHandler.Health)

	// Public auth endpoints
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	r.Route("/api", func(r chi.Router) {
		r.Route("/organisations", func(r chi.Router) {
			// Membership additions carry no auth; compatibility with
			// callers that predate the token flow.
			r.Post("/{orgId}/users", orgHandler.AddUser)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWTService))
				r.Get("/", orgHandler.List)
				r.Post("/", orgHandler.Create)
				r.Get("/{orgId}", orgHandler.Get)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTService))
			r.Get("/users/{id}", userHandler.Get)
		})
	})

	return &Router{r}
}
