package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ironcoach/ironcoach/internal/handler/ask"
	"github.com/ironcoach/ironcoach/internal/handler/volume"
	middlewarePkg "github.com/ironcoach/ironcoach/internal/middleware"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(askHandler *ask.Handler, volumeHandler *volume.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	askHandler.RegisterRoutes(r)
	volumeHandler.RegisterRoutes(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
