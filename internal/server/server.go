package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"seogen/internal/config"
	"seogen/internal/core"
	"seogen/internal/llm"
	"seogen/internal/logger"
	"seogen/internal/report"
)

// Runner is the pipeline surface the server needs.
type Runner interface {
	Run(ctx context.Context, req core.GenerationRequest) (*core.SEOResult, error)
}

// Server exposes the generation pipeline over HTTP. Every request runs an
// independent pipeline; there is no shared mutable state between requests.
type Server struct {
	pipeline   Runner
	httpServer *http.Server
}

// New creates an HTTP server wrapping the given pipeline.
func New(p Runner, cfg config.Server) *Server {
	s := &Server{pipeline: p}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Routes builds the server's handler tree.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/healthz", s.handleHealth)
	return logMiddleware(mux)
}

// ListenAndServe starts serving and blocks until shutdown or failure.
func (s *Server) ListenAndServe() error {
	logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type generateRequest struct {
	Topic      string   `json:"topic"`
	Language   string   `json:"language"`
	Keywords   []string `json:"keywords"`
	Synthesize *bool    `json:"synthesize"` // nil means true
	Model      string   `json:"model"`
}

type generateResponse struct {
	Result  *core.SEOResult `json:"result"`
	Verdict bool            `json:"verdict"`
	Report  string          `json:"report"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Topic == "" {
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	synthesize := true
	if req.Synthesize != nil {
		synthesize = *req.Synthesize
	}

	res, err := s.pipeline.Run(r.Context(), core.GenerationRequest{
		Topic:              req.Topic,
		Language:           core.Language(req.Language),
		Keywords:           req.Keywords,
		SynthesizeKeywords: synthesize,
		Model:              req.Model,
	})
	if err != nil {
		if errors.Is(err, llm.ErrServiceUnavailable) {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Result:  res,
		Verdict: report.Verdict(res),
		Report:  report.Format(res),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", err)
	}
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		next.ServeHTTP(w, r)
		logger.Info("Request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
