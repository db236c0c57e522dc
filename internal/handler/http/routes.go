package http

import (
	"github.com/MKhiriev/go-account-gate/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// account routes: payloads are validated before they reach the handlers
	router.Group(func(r chi.Router) {
		r.With(h.validate(validators.Register())).Post("/api/user/register", h.register)
		r.With(h.validate(validators.Login())).Post("/api/user/login", h.login)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
