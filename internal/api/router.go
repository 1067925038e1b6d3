package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/safar/dealhunter-api/internal/api/handlers"
	"github.com/safar/dealhunter-api/internal/api/middleware"
	"github.com/safar/dealhunter-api/internal/config"
	"github.com/safar/dealhunter-api/internal/database"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the HTTP router for the DealHunter API.
func NewRouter(db *database.DB, log logrus.FieldLogger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recoverer(log))
	r.Use(middleware.CORS)

	// Set before the subrouters are mounted so they inherit them.
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.NotFound)

	maxBody := cfg.Server.MaxBodyBytes
	dealHandler := handlers.NewDealHandler(db, log, maxBody)
	userHandler := handlers.NewUserHandler(db, log, maxBody, cfg.Users.AvatarBaseURL)
	orderHandler := handlers.NewOrderHandler(db, log, maxBody)
	analyticsHandler := handlers.NewAnalyticsHandler(db, log)
	requireAuth := middleware.RequireAuth(db, log)

	r.Route("/api", func(r chi.Router) {
		r.Route("/deals", func(r chi.Router) {
			r.Get("/", dealHandler.List)
			r.Post("/", dealHandler.Create)
			r.Get("/{id}", dealHandler.Get)
			r.Put("/{id}", dealHandler.Update)
			r.Delete("/{id}", dealHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)

			// Protected
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/logout", userHandler.Logout)
				r.Get("/me", userHandler.Me)
				r.Put("/me", userHandler.UpdateMe)
				r.Put("/me/password", userHandler.ChangePassword)
				r.Post("/me/favorites/{dealId}", userHandler.AddFavorite)
				r.Delete("/me/favorites/{dealId}", userHandler.RemoveFavorite)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.Create)
			r.Get("/user/{userId}", orderHandler.ListByUser)
			r.Get("/{id}", orderHandler.Get)
			r.Patch("/{id}/status", orderHandler.UpdateStatus)
			r.Delete("/{id}", orderHandler.Cancel)
		})

		r.Post("/payments/process", orderHandler.ProcessPayment)
		r.Get("/analytics/stats", analyticsHandler.Stats)
		r.Get("/health", analyticsHandler.Health)
	})

	return r
}
