// Package server exposes gallery pages over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/cardgallery-go/internal/config"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery"
)

// Options configures a Server.
type Options struct {
	// BaseURL is the public address used for same-origin links. Empty
	// derives it from each request.
	BaseURL   string
	RateLimit config.RateLimitConfig
	Logger    *zap.Logger
	Metrics   *Metrics
}

// Server routes page requests to a Gallery.
type Server struct {
	gallery *cardgallery.Gallery
	baseURL string
	logger  *zap.Logger
	metrics *Metrics
	router  *mux.Router
}

// New creates a Server and registers its routes.
func New(gallery *cardgallery.Gallery, opts Options) *Server {
	s := &Server{
		gallery: gallery,
		baseURL: opts.BaseURL,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		router:  mux.NewRouter(),
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	s.router.Use(loggingMiddleware(s.logger), metricsMiddleware(s.metrics))
	if opts.RateLimit.RPS > 0 {
		s.router.Use(newRateLimiter(opts.RateLimit.RPS, opts.RateLimit.Burst, s.logger).middleware)
	}

	s.router.HandleFunc("/", s.handlePage).Methods(http.MethodGet, http.MethodHead)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)

	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// handlePage renders the page named by the page query parameter. No
// X-Frame-Options header is set so pages can be embedded.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	pageID := r.URL.Query().Get("page")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	page, err := s.gallery.Render(r.Context(), w, pageID, s.baseURLFor(r))
	var pe *cardgallery.PageError
	if err != nil && !errors.As(err, &pe) {
		// The page was built; only writing it to the client failed.
		s.logger.Warn("Write failed",
			zap.String("trace_id", TraceID(r.Context())),
			zap.String("page", page.ID),
			zap.Error(err))
		return
	}
	if err != nil {
		status := statusFor(err)
		label := page.ID
		if errors.Is(err, cardgallery.ErrPageNotFound) {
			label = "unknown"
		}
		s.metrics.RecordPage(label, "error")

		fields := []zap.Field{
			zap.String("trace_id", TraceID(r.Context())),
			zap.String("page", pageID),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			s.logger.Error("Page failed", fields...)
		} else {
			s.logger.Info("Page not found", fields...)
		}

		w.WriteHeader(status)
		fmt.Fprintf(w, "<!DOCTYPE html>\n<p>%s</p>\n", html.EscapeString(cardgallery.UserMessage(err)))
		return
	}

	s.metrics.RecordPage(page.ID, "ok")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// baseURLFor returns the configured base URL, or the URL of the current
// request without its query.
func (s *Server) baseURLFor(r *http.Request) cardgallery.BaseURLProvider {
	if s.baseURL != "" {
		return cardgallery.StaticBaseURL(s.baseURL)
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return cardgallery.StaticBaseURL(scheme + "://" + r.Host + r.URL.Path)
}

// statusFor maps a page error to an HTTP status.
func statusFor(err error) int {
	if errors.Is(err, cardgallery.ErrPageNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Serve serves handler on ln until ctx is cancelled, then shuts down
// gracefully within cfg.ShutdownTimeout.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg config.ServerConfig, logger *zap.Logger) error {
	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		timeout := cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger.Info("Shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
