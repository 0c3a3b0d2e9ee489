package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/notes-keeper/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{traceIDHeader, utils.HashHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.limiter != nil {
		router.Use(h.withRateLimit)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.With(h.withHashCheck).Post("/", h.createNote)

			r.Get("/{id}", h.getNote)
			r.With(h.withHashCheck).Put("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
