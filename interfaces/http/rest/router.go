package rest

import (
	"context"
	"net/http"

	"zookeepr/application/commands/bus"
	querybus "zookeepr/application/queries/bus"
	"zookeepr/interfaces/http/rest/handlers"
	"zookeepr/interfaces/http/rest/middleware"
	"zookeepr/pkg/common"
	appErrors "zookeepr/pkg/errors"
	"zookeepr/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Counter reports the catalog size for readiness checks
type Counter interface {
	Count(ctx context.Context) int
}

// Options toggles optional router features
type Options struct {
	PublicDir  string
	EnableCORS bool
	Debug      bool
}

// Router creates and configures the HTTP router
type Router struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	catalog    Counter
	metrics    *observability.Collector
	logger     *zap.Logger
	opts       Options
}

// NewRouter creates a new router instance. metrics may be nil.
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	catalog Counter,
	metrics *observability.Collector,
	logger *zap.Logger,
	opts Options,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		catalog:    catalog,
		metrics:    metrics,
		logger:     logger,
		opts:       opts,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()
	errorHandler := appErrors.NewErrorHandler(rt.logger, rt.opts.Debug)

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	if rt.metrics != nil {
		router.Use(middleware.Metrics(rt.metrics))
	}
	router.Use(errorHandler.Middleware)

	if rt.opts.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.metrics != nil {
		router.Handle("/metrics", rt.metrics.Handler())
	}

	router.Route("/api/animals", func(r chi.Router) {
		animalHandler := handlers.NewAnimalHandler(rt.commandBus, rt.queryBus, errorHandler, rt.logger)
		r.Get("/", animalHandler.ListAnimals)
		r.Post("/", animalHandler.CreateAnimal)
		r.Get("/{id}", animalHandler.GetAnimal)
	})

	// Front-end pages; any other GET falls back to the index page
	pages := handlers.NewPageHandler(rt.opts.PublicDir)
	router.Handle("/assets/*", pages.Assets())
	router.Get("/", pages.Page("index.html"))
	router.Get("/animals", pages.Page("animals.html"))
	router.Get("/zookeepers", pages.Page("zookeepers.html"))
	router.Get("/*", pages.Page("index.html"))

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	_ = common.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// readinessCheck reports ready once the catalog has been loaded
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	_ = common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ready",
		"animals": rt.catalog.Count(req.Context()),
	})
}
