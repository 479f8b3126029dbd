package main

import (
	"expvar"
	"github.com/go-chi/chi/v5"
	"net/http"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedResponse)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// Analysis Endpoints
	router.Route("/v1/analysis", func(router chi.Router) {
		router.Post("/", app.Analyze)
		router.Get("/", app.GetAllAnalyses)
		router.Get("/stream", app.StreamAnalysis)
		router.Post("/email", app.EmailAnalysis)
		router.Get("/{id}", app.GetAnalysis)
	})

	// Stat Endpoints
	router.With(app.requireAdmin).Post("/v1/stats", app.InsertStats)

	return router
}
