// Package rest exposes the fulfillment handlers over HTTP so the bot can be
// exercised locally without the Lex host.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
	"github.com/jch254/muzo-fulfillment-handler/internal/core/ports"
)

// Dispatcher handles one Lex turn.
type Dispatcher interface {
	Dispatch(ctx context.Context, event domain.LexEvent) (domain.LexResponse, error)
}

// Handler manages the HTTP interface of the local harness.
type Handler struct {
	dispatcher Dispatcher
	sessions   ports.SessionStore // optional; nil means the caller carries session attributes
	gatherer   prometheus.Gatherer
	log        *zap.Logger
	router     chi.Router
}

// NewHandler initializes the HTTP adapter and sets up routes. A nil
// gatherer falls back to the default Prometheus registry.
func NewHandler(dispatcher Dispatcher, sessions ports.SessionStore, gatherer prometheus.Gatherer, log *zap.Logger) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if log == nil {
		log = zap.NewNop()
	}
	h := &Handler{
		dispatcher: dispatcher,
		sessions:   sessions,
		gatherer:   gatherer,
		log:        log,
		router:     chi.NewRouter(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	h.router.Use(middleware.RequestID)
	h.router.Use(h.requestLogger)
	h.router.Use(middleware.Recoverer)

	h.router.Get("/health", h.HealthCheck)
	h.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	h.router.Post("/lex", h.Fulfill)
}

// HealthCheck is a simple endpoint to verify the harness is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()
		next.ServeHTTP(ww, r)
		h.log.Info("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(started)),
		)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
