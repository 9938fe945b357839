package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	_ "net/http/pprof"

	"go.opentelemetry.io/otel"

	"github.com/vaulto-labs/vaulto-gateway/cache"
	"github.com/vaulto-labs/vaulto-gateway/embed"
	"github.com/vaulto-labs/vaulto-gateway/llm"
	"github.com/vaulto-labs/vaulto-gateway/store"
	"github.com/vaulto-labs/vaulto-gateway/types"
)

var Tracer = otel.Tracer("vaulto-gateway")

// Gateway is the HTTP front of the Vaulto demo backend: the AI chat relay
// plus the mock platform catalog.
type Gateway struct {
	listenAddr    string
	llm           llm.Completer
	store         store.Storage
	cache         cache.Cache
	embed         embed.Embed
	semanticCache bool
}

// NewGateway wires the gateway's collaborators. cache and embedder may be
// nil when the semantic cache is disabled.
func NewGateway(addr string, completer llm.Completer, storage store.Storage, answerCache cache.Cache, embedder embed.Embed, semanticCache bool) *Gateway {
	return &Gateway{
		listenAddr:    addr,
		llm:           completer,
		store:         storage,
		cache:         answerCache,
		embed:         embedder,
		semanticCache: semanticCache && answerCache != nil && embedder != nil,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Gateway) Run(ctx context.Context, stop context.CancelFunc) error {
	defer stop()
	go func() {
		slog.Info("pprof attached: pprof server running on localhost:6060")
		// "nil" tells it to use the DefaultServeMux where pprof registered itself
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			slog.Error("pprof failed", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:        s.listenAddr,
		ReadTimeout: time.Second * 5,
		// No write timeout: chat responses stream for as long as the
		// upstream produces tokens.
		Handler: s.newHTTPHandler(),
	}
	srvErr := make(chan error, 1)
	go func() {
		slog.Info("running HTTP server", "addr", s.listenAddr)
		srvErr <- srv.ListenAndServe()
	}()
	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
		stop()
	}

	slog.Info("graceful shutdown in progress")
	timeCtx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()
	if err := srv.Shutdown(timeCtx); err != nil {
		slog.Error("got this error while doing graceful shutdown", "error", err)
		return err
	}
	slog.Info("graceful shutdown successful")
	return nil
}

func (s *Gateway) newHTTPHandler() *http.ServeMux {
	r := http.NewServeMux()
	r.HandleFunc("POST /api/chat", convertToHandleFunc(s.Chat))
	r.HandleFunc("GET /api/stablecoins", convertToHandleFunc(s.GetStablecoins))
	r.HandleFunc("GET /api/assets", convertToHandleFunc(s.GetAssets))
	r.HandleFunc("GET /api/vaults", convertToHandleFunc(s.GetVaults))
	r.HandleFunc("GET /api/predictions", convertToHandleFunc(s.GetPredictionMarkets))
	r.HandleFunc("GET /api/insights", convertToHandleFunc(s.GetMarketInsights))
	r.HandleFunc("POST /api/wallet/connect", convertToHandleFunc(s.ConnectWallet))
	r.HandleFunc("GET /api/stats", convertToHandleFunc(s.GetStats))
	r.HandleFunc("GET /health", convertToHandleFunc(s.HealthCheck))
	return r
}

// Handler exposes the routing table for tests.
func (s *Gateway) Handler() http.Handler {
	return s.newHTTPHandler()
}

type APIError struct {
	Error   error
	Message string // user-facing; the raw error stays in the logs
	Details string
	Status  int
}

type apiFunc func(w http.ResponseWriter, r *http.Request) *APIError

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func convertToHandleFunc(f apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiError := f(w, r)
		if apiError != nil {
			slog.Error("got this error from an http handler func", "error", apiError.Error, "path", r.URL.Path)
			WriteJSON(w, apiError.Status, types.ErrorResponse{
				Error:   apiError.Message,
				Details: apiError.Details,
			})
		}
	}
}

func (s *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) *APIError {
	WriteJSON(w, http.StatusOK, "Server is healthy!")
	return nil
}

func (s *Gateway) GetStats(w http.ResponseWriter, r *http.Request) *APIError {
	analytics, err := s.store.GetAnalytics()
	if err != nil {
		return &APIError{
			Status:  http.StatusInternalServerError,
			Message: "Internal Server Error",
			Error:   err,
		}
	}
	WriteJSON(w, http.StatusOK, analytics)
	return nil
}
