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

	"github.com/osse101/PetCalendar_Go/internal/calendar"
	"github.com/osse101/PetCalendar_Go/internal/handler"
	"github.com/osse101/PetCalendar_Go/internal/logger"
	"github.com/osse101/PetCalendar_Go/internal/metrics"
	"github.com/osse101/PetCalendar_Go/internal/middleware"
	"github.com/osse101/PetCalendar_Go/internal/pet"
	"github.com/osse101/PetCalendar_Go/internal/sse"
)

type Server struct {
	httpServer      *http.Server
	store           handler.Pinger
	petService      pet.Service
	calendarService calendar.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, store handler.Pinger, petService pet.Service, calendarService calendar.Service, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, store, petService, calendarService, hub),
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:           store,
		petService:      petService,
		calendarService: calendarService,
	}
}

// NewRouter builds the full middleware stack and route table.
// A nil hub disables the event stream.
func NewRouter(apiKey string, trustedProxies []string, store handler.Pinger, petService pet.Service, calendarService calendar.Service, hub *sse.Hub) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	proxies, invalid := ParseTrustedProxies(trustedProxies)
	for _, entry := range invalid {
		slog.Warn(LogMsgBadTrustedProxy, "entry", entry)
	}
	monitor := NewClientMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, proxies, monitor))
	r.Use(RateLimitMiddleware(proxies, monitor))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	petHandler := handler.NewPetHandler(petService)
	calendarHandler := handler.NewCalendarHandler(calendarService)

	r.Route(APIPrefix, func(r chi.Router) {
		// Species are the same for everyone
		r.Get("/species", petHandler.HandleGetSpecies)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Identity)

			r.Route("/pet", func(r chi.Router) {
				r.Get("/", petHandler.HandleGetPet)
				r.Post("/start", petHandler.HandleStart)
				r.Post("/revive", petHandler.HandleRevive)
				r.Post("/reset", petHandler.HandleReset)
				r.Post("/feed", petHandler.HandleFeed)
			})

			r.Get("/shop", petHandler.HandleGetShop)
			r.Post("/shop/buy", petHandler.HandleBuyFood)
			r.Get("/pokedex", petHandler.HandleGetPokedex)

			r.Get("/calendar/{year}/{month}", calendarHandler.HandleGetMonth)

			r.Route("/events", func(r chi.Router) {
				r.Post("/", calendarHandler.HandleAddEvent)
				r.Put("/", calendarHandler.HandleUpdateEvent)
				r.Delete("/", calendarHandler.HandleDeleteEvent)
				r.Post("/done", calendarHandler.HandleSetDone)
			})

			r.Post("/goals", calendarHandler.HandleSetGoal)
			r.Post("/goals/achieve", calendarHandler.HandleAchieveGoal)

			r.Get("/locations", calendarHandler.HandleGetLocations)
			r.Put("/locations", calendarHandler.HandleSaveLocations)

			if hub != nil {
				r.Get("/stream", sse.Handler(hub))
			}
		})
	})

	return r
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

// Flush lets streaming handlers push through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and scrapes would drown out real traffic
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"username", r.Header.Get(middleware.HeaderUsername),
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// sanitizeHeaders copies h with credentials redacted.
func sanitizeHeaders(h http.Header) http.Header {
	sanitized := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			sanitized[k] = []string{RedactedValue}
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
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
