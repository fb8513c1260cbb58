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

	"github.com/betpulse/betpulse/internal/admin"
	"github.com/betpulse/betpulse/internal/analytics"
	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/bookingcode"
	"github.com/betpulse/betpulse/internal/chat"
	"github.com/betpulse/betpulse/internal/database"
	"github.com/betpulse/betpulse/internal/handler"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/match"
	"github.com/betpulse/betpulse/internal/metrics"
	"github.com/betpulse/betpulse/internal/prediction"
	"github.com/betpulse/betpulse/internal/repository"
	"github.com/betpulse/betpulse/internal/sse"
)

type Server struct {
	httpServer        *http.Server
	dbPool            database.Pool
	matchService      match.Service
	predictionService prediction.Service
	analyticsService  analytics.Service
	bookingService    bookingcode.Service
	chatService       chat.Service
	adminService      admin.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, resolver *auth.Resolver, users repository.User, matchService match.Service, predictionService prediction.Service, analyticsService analytics.Service, bookingService bookingcode.Service, chatService chat.Service, adminService admin.Service, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(resolver.Middleware())

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Match routes
		r.Route("/matches", func(r chi.Router) {
			r.Get("/upcoming", handler.HandleListUpcomingMatches(matchService))
			r.Get("/today", handler.HandleListTodaysMatches(matchService))
			r.Get("/live", handler.HandleListLiveMatches(matchService))
			r.Get("/{matchID}", handler.HandleGetMatch(matchService))
		})

		// Prediction routes
		r.Route("/predictions", func(r chi.Router) {
			r.Post("/generate", handler.HandleGeneratePredictions(predictionService))
			r.Get("/match/{matchID}", handler.HandleGetMatchPredictions(predictionService))
			r.Get("/today", handler.HandleGetTodaysPredictions(predictionService))
			r.Get("/top", handler.HandleGetTopPredictions(predictionService))
		})

		// Analytics routes
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/overall", handler.HandleGetOverallStats(analyticsService))
			r.Get("/weekly", handler.HandleGetWeeklyPerformance(analyticsService))
			r.Get("/leagues", handler.HandleGetLeaguePerformance(analyticsService))
			r.Get("/confidence", handler.HandleGetConfidenceAnalysis(analyticsService))
		})

		// Booking code routes
		r.Route("/booking-codes", func(r chi.Router) {
			r.Post("/", handler.HandleCreateBookingCode(bookingService))
			r.Get("/", handler.HandleListActiveBookingCodes(bookingService))
			r.Get("/mine", handler.HandleListMyBookingCodes(bookingService))
			r.Get("/{codeID}", handler.HandleGetBookingCode(bookingService))
			r.Patch("/{codeID}/status", handler.HandleUpdateBookingCodeStatus(bookingService))
		})

		// Chat and presence routes
		r.Route("/chat", func(r chi.Router) {
			r.Post("/messages", handler.HandleSendMessage(chatService))
			r.Get("/messages", handler.HandleGetMessages(chatService))
			r.Delete("/messages/{messageID}", handler.HandleDeleteMessage(chatService))
			r.Post("/presence/heartbeat", handler.HandleHeartbeat(chatService))
			r.Get("/presence/online", handler.HandleGetOnlineUsers(chatService))
		})

		// Live event stream
		r.Get("/events", sse.Handler(hub))

		// Admin routes. The role check wraps the whole group.
		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.RequireAdmin(users))

			r.Route("/matches", func(r chi.Router) {
				r.Post("/", handler.HandleCreateMatch(matchService))
				r.Patch("/{matchID}", handler.HandleUpdateMatch(matchService))
				r.Delete("/{matchID}", handler.HandleDeleteMatch(matchService))
				r.Post("/{matchID}/result", handler.HandleRecordResult(matchService))
			})

			r.Post("/fixtures/import", handler.HandleImportFixtures(adminService))
			r.Post("/live/poll", handler.HandlePollLiveUpdates(adminService))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", handler.HandleListUsers(adminService))
				r.Post("/{userID}/promote", handler.HandlePromoteUser(adminService))
			})

			r.Get("/booking-codes", handler.HandleAdminListBookingCodes(bookingService))
			r.Post("/chat/presence/cleanup", handler.HandleCleanupPresence(chatService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:            dbPool,
		matchService:      matchService,
		predictionService: predictionService,
		analyticsService:  analyticsService,
		bookingService:    bookingService,
		chatService:       chatService,
		adminService:      adminService,
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
			strings.HasPrefix(r.URL.Path, "/readyz") ||
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

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

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
