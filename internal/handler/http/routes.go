package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(withGZip)

	// account endpoints
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/auth/reset-password", h.resetPassword)
		r.Get("/profile/{userId}", h.getProfile)
		r.Put("/profile/edit/{userId}", h.updateProfile)
	})

	// marketplace endpoints
	router.Group(func(r chi.Router) {
		r.Post("/vehicle", h.registerVehicle)
		r.Get("/vehicles/available", h.listAvailableVehicles)
		r.Get("/companies", h.listCompanies)
		r.Post("/checkout", h.checkout)
	})

	// advisory endpoint; identity is attached when a bearer token is sent
	router.Group(func(r chi.Router) {
		r.With(h.withIdentity).Post("/suggest", h.suggest)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
