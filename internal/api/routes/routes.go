package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	_ "github.com/mkk-1817/crm-backend/docs"
	"github.com/mkk-1817/crm-backend/internal/api/auth"
	"github.com/mkk-1817/crm-backend/internal/api/company"
	"github.com/mkk-1817/crm-backend/internal/api/contact"
	"github.com/mkk-1817/crm-backend/internal/api/dashboard"
	"github.com/mkk-1817/crm-backend/internal/api/deal"
	"github.com/mkk-1817/crm-backend/internal/api/health"
	"github.com/mkk-1817/crm-backend/internal/api/user"
	"github.com/mkk-1817/crm-backend/internal/config"
)

func SetupRoutes(cfg *config.Config, gdb *gorm.DB, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	// stores, services & handlers
	userStore := user.NewStore(gdb)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authService := auth.NewService(userStore, issuer)
	guard := auth.NewGuard(issuer, logger)

	authHandler := auth.NewAuthHandler(authService)
	userHandler := user.NewHandler(userStore)
	companyHandler := company.NewHandler(company.NewStore(gdb))
	contactHandler := contact.NewHandler(contact.NewStore(gdb))
	dealHandler := deal.NewHandler(deal.NewStore(gdb))
	dashboardHandler := dashboard.NewHandler(dashboard.NewStore(gdb))

	r.Get("/health", health.HealthHandler)

	// public auth routes
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// protected routes
	r.Group(func(r chi.Router) {
		r.Use(guard.RequireAuth)

		r.Get("/auth/profile", authHandler.Profile)

		r.Route("/companies", func(r chi.Router) {
			r.Post("/", companyHandler.Create)
			r.Get("/", companyHandler.List)
			r.Get("/{id}", companyHandler.Get)
			r.Patch("/{id}", companyHandler.Update)
			r.Delete("/{id}", companyHandler.Delete)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", contactHandler.Create)
			r.Get("/", contactHandler.List)
			r.Get("/{id}", contactHandler.Get)
			r.Patch("/{id}", contactHandler.Update)
			r.Delete("/{id}", contactHandler.Delete)
		})

		r.Route("/deals", func(r chi.Router) {
			r.Post("/", dealHandler.Create)
			r.Get("/", dealHandler.List)
			r.Get("/{id}", dealHandler.Get)
			r.Patch("/{id}", dealHandler.Update)
			r.Delete("/{id}", dealHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", userHandler.Create)
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
			r.Patch("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Get("/dashboard", dashboardHandler.GetStats)
	})

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
