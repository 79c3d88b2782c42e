package http

import (
	"github.com/MKhiriev/zephyr-centrum/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withAdmission, h.withSession)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/register", h.register)
			r.Post("/logout", h.logout)
			r.Get("/check-auth", h.checkAuth)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.requireAuthenticated).Get("/", h.listUsers)
			r.With(h.requireAuthenticated).Get("/{id}", h.getUser)

			r.Group(func(r chi.Router) {
				r.Use(h.requireRole(models.RoleAdmin))
				r.Post("/", h.createUser)
				r.Patch("/{id}", h.patchUser)
				r.Delete("/{id}", h.deleteUser)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
