package main

import (
	"net/http"

	"fleet-dashboard/internal/detail"
	"fleet-dashboard/internal/handlers"
	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/middleware"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/providers"
	"fleet-dashboard/internal/session"
	"fleet-dashboard/internal/websocket"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
)

type app struct {
	store        *session.Store
	tokens       *session.Tokens
	fleet        *providers.Fleet
	assembler    *detail.Assembler
	hub          *websocket.Hub
	authRequired bool
	log          *logger.Logger
}

func (a *app) router() http.Handler {
	validate := validator.New()

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", handlers.Health(a.hub))

	// Live feed; the handshake checks the token itself
	r.With(middleware.OptionalAuth(a.tokens)).
		Get("/ws", websocket.HandleWebSocket(a.hub, a.tokens, a.locations, a.authRequired))

	r.Route("/api", func(r chi.Router) {
		r.NotFound(handlers.NotFound)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", handlers.Login(a.store, a.tokens, validate, a.log))
			r.Post("/logout", handlers.Logout(a.store))
			r.Get("/status", handlers.GetAuthStatus(a.store))
		})

		r.Group(func(r chi.Router) {
			if a.authRequired {
				r.Use(middleware.Auth(a.tokens, a.log))
			} else {
				r.Use(middleware.OptionalAuth(a.tokens))
			}

			r.Get("/dashboard", handlers.GetDashboard(a.fleet, a.store))

			r.Route("/trucks", func(r chi.Router) {
				r.Get("/", handlers.ListTrucks(a.fleet))
				r.Get("/{id}", handlers.GetTruck(a.assembler, a.log))
			})
			r.Route("/drivers", func(r chi.Router) {
				r.Get("/", handlers.ListDrivers(a.fleet))
				r.Get("/{id}", handlers.GetDriver(a.assembler, a.log))
			})
			r.Route("/deliveries", func(r chi.Router) {
				r.Get("/", handlers.ListDeliveries(a.fleet))
				r.Get("/{id}", handlers.GetDelivery(a.assembler, a.log))
			})

			r.Route("/map", func(r chi.Router) {
				r.Get("/locations", handlers.GetMapLocations(a.fleet))
				r.Get("/locations.geojson", handlers.GetMapGeoJSON(a.fleet, a.log))
				r.Post("/select", handlers.SelectTruck(a.fleet, validate))
			})

			r.Get("/analytics", handlers.GetAnalytics())
			r.Get("/analytics/export", handlers.ExportAnalytics(a.log))
		})
	})

	// Browser paths resolve to view descriptors; unknown ones redirect
	navigate := middleware.OptionalAuth(a.tokens)(handlers.Navigate(a.store, a.authRequired))
	r.Get("/", navigate.ServeHTTP)
	r.Get("/login", navigate.ServeHTTP)
	r.Get("/dashboard", navigate.ServeHTTP)
	r.Get("/dashboard/*", navigate.ServeHTTP)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			handlers.NotFound(w, r)
			return
		}
		navigate.ServeHTTP(w, r)
	})

	return r
}

func (a *app) locations() []models.TruckLocation {
	return a.fleet.TruckLocations.Snapshot().Items
}
