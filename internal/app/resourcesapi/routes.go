// Package resourcesapi предоставляет маршруты для основного приложения.
package resourcesapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/ai-advantage/resources-api/internal/config"
	adminsubscribers "github.com/ai-advantage/resources-api/internal/http/handlers/admin/subscribers"
	cronsyncsheets "github.com/ai-advantage/resources-api/internal/http/handlers/cron/syncsheets"
	"github.com/ai-advantage/resources-api/internal/http/handlers/health"
	"github.com/ai-advantage/resources-api/internal/http/handlers/subscribe"
	toolslist "github.com/ai-advantage/resources-api/internal/http/handlers/tools/list"
	"github.com/ai-advantage/resources-api/internal/http/middlewarectx"
	catalogservice "github.com/ai-advantage/resources-api/internal/services/catalog"
	sheetsyncservice "github.com/ai-advantage/resources-api/internal/services/sheetsync"
	subscriptionservice "github.com/ai-advantage/resources-api/internal/services/subscription"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	catalogService *catalogservice.Service,
	subscriptionService *subscriptionservice.Service,
	syncService *sheetsyncservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/tools", toolslist.New(logger, catalogService).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, rate.Limit(5), 10))
			r.Post("/subscribe", subscribe.New(logger, subscriptionService).ServeHTTP)
		})

		// Служебные конечные точки под общим bearer-секретом
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.BearerSecretMiddleware(cfg.CronSecret, logger))
			r.Get("/admin/subscribers", adminsubscribers.New(logger, subscriptionService).ServeHTTP)
			r.Get("/cron/sync-sheets", cronsyncsheets.New(logger, syncService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
