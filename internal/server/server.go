package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/craftdex/companion/internal/catalog"
	"github.com/craftdex/companion/internal/handler"
	"github.com/craftdex/companion/internal/inventory"
	"github.com/craftdex/companion/internal/logger"
	"github.com/craftdex/companion/internal/metrics"
	"github.com/craftdex/companion/internal/planner"
	"github.com/craftdex/companion/internal/snapshot"
)

type Server struct {
	httpServer       *http.Server
	catalog          *catalog.Catalog
	plannerService   planner.Service
	inventoryService inventory.Service
	snapshotService  snapshot.Service
}

// NewServer creates a new Server instance
func NewServer(port int, snapshotMaxBytes int64, cat *catalog.Catalog, searcher *catalog.Searcher, plannerService planner.Service, inventoryService inventory.Service, snapshotService snapshot.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check route (unversioned)
	r.Get("/healthz", handler.HandleHealthz(cat))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Catalog routes
		r.Get("/items", handler.HandleListItems(searcher))
		r.Get("/items/{id}", handler.HandleGetItem(cat))
		r.Get("/recipes", handler.HandleListRecipes(cat))
		r.Get("/recipes/{id}", handler.HandleGetRecipe(cat))

		// Planner routes
		r.Get("/planner", handler.HandleGetPlanner(plannerService)) // Handle /planner exactly
		r.Route("/planner", func(r chi.Router) {
			r.Get("/", handler.HandleGetPlanner(plannerService))
			r.Post("/add", handler.HandleAddToPlanner(plannerService))
			r.Post("/update", handler.HandleUpdatePlanner(plannerService))
			r.Post("/remove", handler.HandleRemoveFromPlanner(plannerService))
			r.Post("/custom-ingredient", handler.HandleAddCustomIngredient(plannerService))
			r.Get("/custom-ingredients", handler.HandleGetCustomIngredients(plannerService))
		})

		// Inventory routes
		r.Get("/inventory", handler.HandleGetInventory(inventoryService)) // Handle /inventory exactly
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(inventoryService))
			r.Post("/add", handler.HandleAddInventory(inventoryService))
			r.Post("/set", handler.HandleSetInventory(inventoryService))
			r.Post("/remove", handler.HandleRemoveInventory(inventoryService))
		})

		// Snapshot routes
		r.Get("/snapshot", handler.HandleExportSnapshot(snapshotService))
		r.Post("/snapshot", handler.HandleImportSnapshot(snapshotService, snapshotMaxBytes))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		catalog:          cat,
		plannerService:   plannerService,
		inventoryService: inventoryService,
		snapshotService:  snapshotService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
