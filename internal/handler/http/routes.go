package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
	}))

	router.Route("/company-management", func(r chi.Router) {
		r.Post("/", h.createCompany)
		r.Get("/{company_id}", h.getCompany)
	})

	// liveness and health live outside the authenticated /user subtree
	router.Get("/user-management", h.liveness)
	router.Get("/user-management/health", h.health)

	router.Route("/user-management/user", func(r chi.Router) {
		r.Use(h.identity)
		r.Post("/companies", h.getUserCompanies)
		r.Post("/users-view", h.getUserWithIncidents)
	})

	return router
}
