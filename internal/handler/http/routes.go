package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Unknown paths answer 404 and known paths with an
// unregistered method answer 405, both after the auth gate.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.auth)

	router.Get("/users", h.listUsers)
	router.Post("/users", h.createUser)
	router.Get("/users/{id:[0-9]+}", h.getUser)
	router.Delete("/users/{id:[0-9]+}", h.deleteUser)

	return router
}
