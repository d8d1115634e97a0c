package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/gardenmate/internal/api"
	apiMiddleware "github.com/phrazzld/gardenmate/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// The client and logger are never nil here.
	generateHandler, _ := api.NewGenerateHandler(app.client, app.logger.With("component", "api"))

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", generateHandler.Generate)
	})

	r.Get("/health", api.Health)

	return r
}
