package http

import (
	"net/http"

	"attempt-stats/internal/pipelines"
	"attempt-stats/internal/shared/loggers"
	"attempt-stats/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(batchService pipelines.BatchService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	submitBatchHandler := NewSubmitBatchHandler(batchService)
	getBatchReportHandler := NewGetBatchReportHandler(batchService)

	// Routes
	router.Post("/batches", errorHandlingAdapter(submitBatchHandler))
	router.Get("/batches/{"+paramBatchID+"}", errorHandlingAdapter(getBatchReportHandler))
	router.Get("/healthz", errorHandlingAdapter(NewHealthHandler()))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
