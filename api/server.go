// Package api provides the HTTP REST API server for adlens.
//
// It exposes endpoints for single-text, single-ad, batch and competitor
// analysis, plus lexicon and configuration introspection.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seenimoa/adlens/internal/adsource"
	"github.com/seenimoa/adlens/internal/config"
	"github.com/seenimoa/adlens/internal/engine"
	"github.com/seenimoa/adlens/internal/infra"
	"github.com/seenimoa/adlens/pkg/models"
)

var (
	errEmptyText    = errors.New("text is required")
	errNoAds        = errors.New("ads are required")
	errNoName       = errors.New("name is required")
	errBodyTooLarge = errors.New("request body too large")
)

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	cfg     *config.Config
	engine  *engine.Engine
	cache   *infra.Cache[models.AnalysisRecord]
	limiter *infra.Limiter
	log     *zap.Logger
	started time.Time
}

// NewServer creates a configured API server with all routes and middleware.
// A nil logger disables logging.
func NewServer(cfg *config.Config, eng *engine.Engine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	srv := &Server{
		cfg:     cfg,
		engine:  eng,
		limiter: infra.NewLimiter(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst),
		log:     log.Named("api"),
		started: time.Now(),
	}
	if cfg.Analysis.CacheTTL > 0 {
		ttl := time.Duration(cfg.Analysis.CacheTTL) * time.Second
		srv.cache = infra.NewCache[models.AnalysisRecord](ttl, cfg.Analysis.CacheMaxEntries)
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server and shuts it down gracefully when
// ctx is cancelled or the process receives SIGINT/SIGTERM.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpSrv := &http.Server{
		Addr:         s.cfg.API.Addr(),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if s.cache != nil {
		go s.sweepCache(ctx, time.Duration(s.cfg.Analysis.CacheTTL)*time.Second)
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// sweepCache drops expired analysis responses every interval until ctx is
// done.
func (s *Server) sweepCache(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.cache.Cleanup(); n > 0 {
				s.log.Debug("cache swept", zap.Int("expired", n))
			}
		}
	}
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Cache"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", s.handleHealth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/lexicon", s.handleLexicon)
		r.Get("/config", s.handleGetConfig)

		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit)
			r.Post("/analyze", s.handleAnalyze)
			r.Post("/analyze/ad", s.handleAnalyzeAd)
			r.Post("/analyze/batch", s.handleAnalyzeBatch)
			r.Post("/competitors/analyze", s.handleAnalyzeCompetitor)
		})
	})

	return r
}

// requestLogger logs one line per request with the zap logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// rateLimit rejects requests beyond the configured token bucket.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ============================================================
// Request / Response types
// ============================================================

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AnalyzeRequest is the body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeAdRequest is the body for POST /api/v1/analyze/ad.
type AnalyzeAdRequest struct {
	Ad models.Ad `json:"ad"`
}

// BatchRequest is the body for POST /api/v1/analyze/batch.
type BatchRequest struct {
	Ads []models.Ad `json:"ads"`
}

// CompetitorRequest is the body for POST /api/v1/competitors/analyze.
type CompetitorRequest struct {
	Name string      `json:"name"`
	Ads  []models.Ad `json:"ads"`
}

// LexiconInfo describes the loaded lexicon.
type LexiconInfo struct {
	Version       string         `json:"version"`
	EngineVersion string         `json:"engine_version"`
	Tables        map[string]int `json:"tables"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":          "ok",
			"version":         engine.Version,
			"lexicon_version": s.engine.LexiconVersion(),
			"uptime_seconds":  int(time.Since(s.started).Seconds()),
		},
	})
}

func (s *Server) handleLexicon(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: LexiconInfo{
			Version:       s.engine.LexiconVersion(),
			EngineVersion: engine.Version,
			Tables:        s.engine.Lexicon().Stats(),
		},
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, errEmptyText.Error())
		return
	}

	key := cacheKey(req.Text)
	if s.cache != nil {
		if rec, ok := s.cache.Get(key); ok {
			w.Header().Set("X-Cache", "HIT")
			writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: rec})
			return
		}
	}

	rec := s.engine.Analyze(req.Text)
	if s.cache != nil {
		s.cache.Set(key, rec)
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: rec})
}

func (s *Server) handleAnalyzeAd(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeAdRequest
	if !s.decode(w, r, &req) {
		return
	}
	ads := adsource.Normalize([]models.Ad{req.Ad})
	if ads[0].Text() == "" {
		writeError(w, http.StatusBadRequest, errEmptyText.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    s.engine.AnalyzeAd(ads[0]),
	})
}

func (s *Server) handleAnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !s.decode(w, r, &req) {
		return
	}
	ads, ok := s.validAds(w, req.Ads)
	if !ok {
		return
	}

	records, err := s.engine.AnalyzeMany(r.Context(), ads)
	if err != nil {
		s.log.Warn("batch analysis failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: records})
}

func (s *Server) handleAnalyzeCompetitor(w http.ResponseWriter, r *http.Request) {
	var req CompetitorRequest
	if !s.decode(w, r, &req) {
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		writeError(w, http.StatusBadRequest, errNoName.Error())
		return
	}
	ads, ok := s.validAds(w, req.Ads)
	if !ok {
		return
	}

	result, err := s.engine.AnalyzeCompetitor(r.Context(), name, ads)
	if err != nil {
		s.log.Warn("competitor analysis failed", zap.String("competitor", name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result})
}

// ============================================================
// Helpers
// ============================================================

// decode reads a size-limited JSON body into v, writing the error response
// itself when it fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.API.MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, errBodyTooLarge.Error())
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// validAds normalizes ads and enforces the batch limits.
func (s *Server) validAds(w http.ResponseWriter, in []models.Ad) ([]models.Ad, bool) {
	if len(in) > s.cfg.API.MaxBatch {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("too many ads: %d (max %d)", len(in), s.cfg.API.MaxBatch))
		return nil, false
	}
	// Blank ads stay in the batch and get a baseline record; only a batch
	// with no text at all is rejected.
	ads := adsource.Normalize(in)
	for _, ad := range ads {
		if ad.Text() != "" {
			return ads, true
		}
	}
	writeError(w, http.StatusBadRequest, errNoAds.Error())
	return nil, false
}

// cacheKey is a name-based UUID of the text.
func cacheKey(text string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(text)).String()
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}
