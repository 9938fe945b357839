package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/vaulto-labs/vaulto-gateway/types"
)

const collectionName = "vaulto_answers"

// Cache is the semantic answer cache. A hit means a previously answered
// question is close enough to the current one to reuse its answer.
type Cache interface {
	ExistsInCache(ctx context.Context, vec types.Embedding, query string) (types.CachedAnswer, bool, error)
	InsertIntoCache(ctx context.Context, vec types.Embedding, question, answer string) error
}

type QdrantCache struct {
	client    *qdrant.Client
	threshold float32
}

// NewQdrantCache connects to qdrant and makes sure the answer collection
// exists. dims must match the embedding model's output size.
func NewQdrantCache(host string, port int, dims int) (*QdrantCache, error) {
	client, err := qdrant.NewClient(&qdrant.Config{Host: host, Port: port})
	if err != nil {
		return nil, fmt.Errorf("connect to qdrant: %w", err)
	}

	exists, err := client.CollectionExists(context.Background(), collectionName)
	if err != nil {
		return nil, fmt.Errorf("check collection: %w", err)
	}
	if !exists {
		err = client.CreateCollection(context.Background(), &qdrant.CreateCollection{
			CollectionName: collectionName,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(dims),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return nil, fmt.Errorf("create collection: %w", err)
		}
	}

	return &QdrantCache{client: client, threshold: 0.95}, nil
}

func (q *QdrantCache) ExistsInCache(ctx context.Context, vec types.Embedding, query string) (types.CachedAnswer, bool, error) {
	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collectionName,
		Query:          qdrant.NewQuery(vec...),
		Limit:          qdrant.PtrOf(uint64(1)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return types.CachedAnswer{}, false, fmt.Errorf("query cache: %w", err)
	}
	if len(points) == 0 || points[0].Score < q.threshold {
		return types.CachedAnswer{}, false, nil
	}

	payload := points[0].Payload
	hit := types.CachedAnswer{
		Question: payload["question"].GetStringValue(),
		Answer:   payload["answer"].GetStringValue(),
		Score:    points[0].Score,
	}
	if hit.Answer == "" {
		// A point without an answer payload is useless; treat as a miss.
		return types.CachedAnswer{}, false, nil
	}
	slog.Info("semantic cache hit", "score", hit.Score, "query", query)
	return hit, true, nil
}

func (q *QdrantCache) InsertIntoCache(ctx context.Context, vec types.Embedding, question, answer string) error {
	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collectionName,
		Points: []*qdrant.PointStruct{
			{
				Id:      qdrant.NewID(uuid.NewString()),
				Vectors: qdrant.NewVectors(vec...),
				Payload: qdrant.NewValueMap(map[string]any{
					"question": question,
					"answer":   answer,
				}),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("upsert cached answer: %w", err)
	}
	return nil
}
