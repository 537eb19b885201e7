package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Path matching is left to the dispatcher, so every
// path and method, including chi's not-found and method-not-allowed hooks,
// ends in h.dispatch.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.HandleFunc("/", h.dispatch)
	router.HandleFunc("/*", h.dispatch)

	router.NotFound(h.dispatch)
	router.MethodNotAllowed(h.dispatch)

	return router
}
