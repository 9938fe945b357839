package embed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nlpodyssey/cybertron/pkg/models/bert"
	"github.com/nlpodyssey/cybertron/pkg/tasks"
	"github.com/nlpodyssey/cybertron/pkg/tasks/textencoding"

	"github.com/vaulto-labs/vaulto-gateway/types"
)

// Embed produces a dense vector for a chat question. The result is always
// delivered on the channel unless the context is already done; callers
// decide how long they are willing to wait.
type Embed interface {
	GenerateQueryEmbedding(ctx context.Context, query string, out chan<- types.EmbeddingResult)
	Dimensions() int
	Close() error
}

// Encoder wraps a locally loaded sentence-transformer.
type Encoder struct {
	model textencoding.Interface
	dims  int
}

// NewEncoder loads the encoder model from modelsDir, downloading it on first
// use. Loading is expensive, so the encoder is built once at startup and
// shared across requests.
func NewEncoder(modelsDir string) (*Encoder, error) {
	model, err := tasks.Load[textencoding.Interface](&tasks.Config{
		ModelsDir: modelsDir,
		ModelName: textencoding.DefaultModel,
	})
	if err != nil {
		return nil, fmt.Errorf("load text encoding model: %w", err)
	}
	return &Encoder{model: model, dims: 384}, nil
}

func (e *Encoder) Dimensions() int { return e.dims }

func (e *Encoder) GenerateQueryEmbedding(ctx context.Context, query string, out chan<- types.EmbeddingResult) {
	if ctx.Err() != nil {
		return
	}
	res, err := e.model.Encode(ctx, query, int(bert.MeanPooling))
	if err != nil {
		slog.Warn("query embedding failed", "error", err)
		select {
		case out <- types.EmbeddingResult{Query: query, Err: err}:
		case <-ctx.Done():
		}
		return
	}

	data := res.Vector.Data().F64()
	vec := make(types.Embedding, len(data))
	for i, v := range data {
		vec[i] = float32(v)
	}
	select {
	case out <- types.EmbeddingResult{Query: query, Vector: vec}:
	case <-ctx.Done():
	}
}

func (e *Encoder) Close() error { return nil }
