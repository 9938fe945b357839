package store

import (
	"context"
	"sync"

	"github.com/vaulto-labs/vaulto-gateway/types"
)

// MemoryStore keeps telemetry in process memory. Used when no database DSN
// is configured and in tests.
type MemoryStore struct {
	mu      sync.Mutex
	records []*types.RequestRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SubmitInsertRequest(_ context.Context, rec *types.RequestRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

func (s *MemoryStore) GetAnalytics() (types.Analytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var a types.Analytics
	a.TotalRequests = len(s.records)
	if a.TotalRequests == 0 {
		return a, nil
	}

	var totalMs, totalChars int64
	for _, rec := range s.records {
		if rec.CacheHit {
			a.CacheHits++
		}
		if rec.Status != types.StatusOK {
			a.Errored++
		}
		totalMs += rec.Time.Milliseconds()
		totalChars += int64(rec.ResponseChars)
	}
	a.AvgDurationMs = float64(totalMs) / float64(a.TotalRequests)
	a.AvgResponseSize = float64(totalChars) / float64(a.TotalRequests)
	return a, nil
}

// Records returns a snapshot of everything submitted so far.
func (s *MemoryStore) Records() []*types.RequestRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*types.RequestRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *MemoryStore) Close() error { return nil }
