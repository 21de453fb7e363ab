// Package server exposes composed figures over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/san-kum/mechviz/internal/config"
	"github.com/san-kum/mechviz/internal/export"
	"github.com/san-kum/mechviz/internal/figure"
	"github.com/san-kum/mechviz/internal/logging"
)

// Metrics holds the collectors for one server instance.
type Metrics struct {
	Figures *prometheus.CounterVec
	Compose prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Figures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mechviz_figures_total",
				Help: "Figures served, by output format.",
			},
			[]string{"format"},
		),
		Compose: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mechviz_compose_seconds",
			Help:    "Time spent composing a figure.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	reg.MustRegister(m.Figures, m.Compose)
	return m
}

type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *Metrics
}

// NewHandler builds the router. Each Handler gets its own registry so
// several can coexist in one process.
func NewHandler(cfg *config.Config, logger *slog.Logger) http.Handler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	reg := prometheus.NewRegistry()
	s := &Server{cfg: cfg, logger: logger, metrics: NewMetrics(reg)}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	r.Get("/figure", s.figureJSON)
	r.Get("/figure.svg", s.figureSVG)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) compose(w http.ResponseWriter, r *http.Request) (figure.Figure, bool) {
	limit := s.cfg.Slider.Default
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "limit must be a number", http.StatusBadRequest)
			return figure.Figure{}, false
		}
		limit = v
	}

	start := time.Now()
	fig, err := figure.Compose(limit, s.cfg)
	s.metrics.Compose.Observe(time.Since(start).Seconds())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, figure.ErrLimitOutOfRange) {
			status = http.StatusBadRequest
		}
		s.logger.Warn("compose failed", "limit", limit, "error", err)
		http.Error(w, err.Error(), status)
		return figure.Figure{}, false
	}
	return fig, true
}

func (s *Server) figureJSON(w http.ResponseWriter, r *http.Request) {
	fig, ok := s.compose(w, r)
	if !ok {
		return
	}
	s.metrics.Figures.WithLabelValues(string(export.FormatJSON)).Inc()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(fig); err != nil {
		s.logger.Error("encode figure", "error", err)
	}
}

func (s *Server) figureSVG(w http.ResponseWriter, r *http.Request) {
	fig, ok := s.compose(w, r)
	if !ok {
		return
	}
	s.metrics.Figures.WithLabelValues(string(export.FormatSVG)).Inc()
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := export.SVG(w, fig, export.DefaultOptions); err != nil {
		s.logger.Error("write svg", "error", err)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
