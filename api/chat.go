package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/vaulto-labs/vaulto-gateway/types"
)

const (
	msgMessageRequired   = "Message is required"
	msgServiceDown       = "AI service is not available. Please check configuration."
	msgUpstreamFailed    = "Failed to get AI response"
	msgStreamInterrupted = "The response was interrupted. Please try again."

	doneSentinel = "[DONE]"

	// How long the cache path waits for the query embedding before giving
	// up and going straight to the model.
	embedWait = 300 * time.Millisecond
	// How long the embedding worker itself may keep running for lazy
	// cache inserts after the response has been answered.
	embedBudget = 2 * time.Second
)

// Chat relays one question to the completion provider and streams the answer
// back as data frames. Every frame carries the full accumulated answer, not
// a delta; a clean stream ends with exactly one [DONE] frame. A failure
// after the first frame produces a terminal error frame and no [DONE], so
// the consumer can tell a broken stream from a finished one.
func (s *Gateway) Chat(w http.ResponseWriter, r *http.Request) *APIError {
	start := time.Now()
	ctx, span := Tracer.Start(r.Context(), "Chat")
	defer span.End()

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &APIError{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Message) == "" {
		return &APIError{
			Status:  http.StatusBadRequest,
			Message: msgMessageRequired,
			Error:   fmt.Errorf("empty message"),
		}
	}

	if !s.llm.Configured() {
		slog.Warn("chat request rejected: no provider credential configured")
		return &APIError{
			Status:  http.StatusServiceUnavailable,
			Message: msgServiceDown,
			Error:   fmt.Errorf("completion provider not configured"),
		}
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		return &APIError{
			Status:  http.StatusInternalServerError,
			Message: "Streaming unsupported",
			Error:   fmt.Errorf("response writer does not implement http.Flusher"),
		}
	}

	rec := &types.RequestRecord{
		ID:      uuid.NewString(),
		Context: req.Context,
		Model:   s.llm.Model(),
	}
	span.SetAttributes(
		attribute.String("request_id", rec.ID),
		attribute.String("chat_context", req.Context),
	)

	// Semantic cache lookup. A miss or any cache trouble just falls
	// through to the model; the user never waits on the cache.
	vec := s.lookupEmbedding(ctx, req.Message)
	if vec != nil {
		if hit, ok, err := s.cache.ExistsInCache(ctx, vec, req.Message); err == nil && ok {
			writeStreamHeaders(w)
			writeFrame(w, types.StreamEvent{Content: hit.Answer})
			fmt.Fprintf(w, "data: %s\n\n", doneSentinel)
			flusher.Flush()

			rec.Status = types.StatusOK
			rec.CacheHit = true
			rec.ResponseChars = len(hit.Answer)
			rec.Frames = 1
			rec.Time = time.Since(start)
			span.SetAttributes(attribute.Bool("cache_hit", true))
			s.store.SubmitInsertRequest(context.WithoutCancel(ctx), rec)
			return nil
		}
	}

	var full strings.Builder
	frames := 0
	err := s.llm.StreamCompletion(ctx, req.Message, func(delta string) error {
		full.WriteString(delta)
		if frames == 0 {
			// Headers go out with the first frame so a pre-stream
			// provider failure can still answer with a 500 body.
			writeStreamHeaders(w)
		}
		frames++
		if err := writeFrame(w, types.StreamEvent{Content: full.String()}); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})

	rec.ResponseChars = full.Len()
	rec.Frames = frames
	span.SetAttributes(attribute.Bool("cache_hit", false))

	if err != nil {
		slog.Error("completion stream failed", "error", err, "request_id", rec.ID, "frames", frames)
		if frames == 0 {
			rec.Status = types.StatusErrored
			rec.Time = time.Since(start)
			s.store.SubmitInsertRequest(context.WithoutCancel(ctx), rec)
			return &APIError{
				Status:  http.StatusInternalServerError,
				Message: msgUpstreamFailed,
				Details: err.Error(),
				Error:   err,
			}
		}
		// Content already went out; close with a terminal error frame
		// instead of a [DONE] so the consumer takes its error path.
		writeFrame(w, types.StreamEvent{Error: msgStreamInterrupted})
		flusher.Flush()
		rec.Status = types.StatusInterrupted
		rec.Time = time.Since(start)
		s.store.SubmitInsertRequest(context.WithoutCancel(ctx), rec)
		return nil
	}

	fmt.Fprintf(w, "data: %s\n\n", doneSentinel)
	flusher.Flush()

	rec.Status = types.StatusOK
	rec.Time = time.Since(start)
	s.store.SubmitInsertRequest(context.WithoutCancel(ctx), rec)

	if vec != nil && full.Len() > 0 {
		answer := full.String()
		insertCtx := context.WithoutCancel(ctx)
		go func() {
			if err := s.cache.InsertIntoCache(insertCtx, vec, req.Message, answer); err != nil {
				slog.Warn("failed to insert answer into semantic cache", "error", err)
			}
		}()
	}
	return nil
}

// lookupEmbedding returns the query embedding if the semantic cache is
// enabled and the encoder produced a vector within the wait budget,
// otherwise nil.
func (s *Gateway) lookupEmbedding(ctx context.Context, query string) types.Embedding {
	if !s.semanticCache {
		return nil
	}

	embedCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), embedBudget)
	defer cancel()
	results := make(chan types.EmbeddingResult, 1)
	go s.embed.GenerateQueryEmbedding(embedCtx, query, results)

	select {
	case <-time.After(embedWait):
		slog.Info("embedding generation took too long, skipping cache lookup")
		return nil
	case res := <-results:
		if res.Err != nil {
			slog.Warn("embedding generation failed", "error", res.Err)
			return nil
		}
		return res.Vector
	}
}

func writeStreamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
}

func writeFrame(w http.ResponseWriter, ev types.StreamEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}
