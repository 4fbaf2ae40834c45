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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/calendar"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/database"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/handler"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/harvest"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/logger"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/market"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/metrics"
)

// Config holds the HTTP settings of the server
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Services are the domain services exposed over HTTP
type Services struct {
	Harvest  harvest.Service
	Calendar calendar.Service
	Market   market.Service
	Crops    handler.CropLister
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, dbPool, svc),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes.
// Middleware executes in the order it is registered, outermost first.
func NewRouter(cfg Config, dbPool database.Pool, svc Services) http.Handler {
	handler.InitValidator()

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()

	r.Use(requestIDMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/crops", handler.HandleListCrops(svc.Crops))

		harvestHandler := handler.NewHarvestHandler(svc.Harvest)
		r.Route("/harvest", func(r chi.Router) {
			r.Post("/calculate", harvestHandler.Calculate)
			r.Get("/history", harvestHandler.History)
			r.Get("/recent/{crop}", harvestHandler.Recent)
		})

		calendarHandler := handler.NewCalendarHandler(svc.Calendar)
		r.Route("/calendar/events", func(r chi.Router) {
			r.Post("/", calendarHandler.Create)
			r.Get("/", calendarHandler.List)
			r.Get("/upcoming", calendarHandler.Upcoming)
			r.Get("/{id}", calendarHandler.Get)
			r.Put("/{id}", calendarHandler.Update)
			r.Delete("/{id}", calendarHandler.Delete)
		})

		marketHandler := handler.NewMarketHandler(svc.Market)
		r.Route("/market-prices", func(r chi.Router) {
			r.Post("/", marketHandler.Record)
			r.Get("/{crop}", marketHandler.Latest)
			r.Get("/{crop}/history", marketHandler.History)
			r.Get("/{crop}/markets", marketHandler.Markets)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// requestIDMiddleware reuses a client supplied X-Request-ID or generates one
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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
		// Probes and scrapes are not logged
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		log := logger.FromContext(r.Context())

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
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
