package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/vaulto-labs/vaulto-gateway/api"
	"github.com/vaulto-labs/vaulto-gateway/cache"
	"github.com/vaulto-labs/vaulto-gateway/embed"
	"github.com/vaulto-labs/vaulto-gateway/llm"
	"github.com/vaulto-labs/vaulto-gateway/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, returnOpts()))
	slog.SetDefault(logger)
	slog.Info("the logger has been initialised")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); endpoint != "" {
		shutdown, err := setupTracing(ctx)
		if err != nil {
			slog.Error("failed to set up tracing", "error", err)
			os.Exit(1)
		}
		defer shutdown(context.Background())
	}

	storage := newStorage()
	defer storage.Close()

	completer := newCompleter()

	answerCache, embedder, semantic := newSemanticCache()

	addr := getEnv("VAULTO_ADDR", ":9000")
	server := api.NewGateway(addr, completer, storage, answerCache, embedder, semantic)
	slog.Info("server starting", "addr", addr, "semantic_cache", semantic)
	if err := server.Run(ctx, stop); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func newStorage() store.Storage {
	dsn := os.Getenv("VAULTO_DB_DSN")
	if dsn == "" {
		slog.Info("no database DSN configured, using in-memory telemetry store")
		return store.NewMemoryStore()
	}
	pg, err := store.NewPostgresStore(dsn)
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	if err := pg.Init(); err != nil {
		slog.Error("failed to initialise the postgres schema", "error", err)
		os.Exit(1)
	}
	return pg
}

func newCompleter() llm.Completer {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Warn("OPENAI_API_KEY not set; chat requests will answer 503")
		return llm.Disabled()
	}
	completer, err := llm.New(apiKey,
		llm.WithModel(os.Getenv("OPENAI_MODEL")),
		llm.WithBaseURL(os.Getenv("OPENAI_BASE_URL")),
	)
	if err != nil {
		slog.Error("failed to build completion client", "error", err)
		os.Exit(1)
	}
	return completer
}

func newSemanticCache() (cache.Cache, embed.Embed, bool) {
	if getEnv("VAULTO_SEMANTIC_CACHE", "false") != "true" {
		return nil, nil, false
	}

	encoder, err := embed.NewEncoder(getEnv("VAULTO_MODELS_DIR", "models"))
	if err != nil {
		slog.Error("failed to load the embedding model", "error", err)
		os.Exit(1)
	}

	port, err := strconv.Atoi(getEnv("QDRANT_PORT", "6334"))
	if err != nil {
		slog.Error("invalid QDRANT_PORT", "error", err)
		os.Exit(1)
	}
	answerCache, err := cache.NewQdrantCache(getEnv("QDRANT_HOST", "localhost"), port, encoder.Dimensions())
	if err != nil {
		slog.Error("failed to connect to qdrant", "error", err)
		os.Exit(1)
	}
	return answerCache, encoder, true
}

func setupTracing(ctx context.Context) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("vaulto-gateway"),
		)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func returnOpts() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("time", a.Value.Time().Format("15:04:05"))
			}
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					return slog.String("src", filepath.Base(source.File)+":"+strconv.Itoa(source.Line))
				}
			}
			return a
		},
	}
}
