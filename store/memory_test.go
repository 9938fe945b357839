package store

import (
	"context"
	"testing"
	"time"

	"github.com/vaulto-labs/vaulto-gateway/types"
)

func TestMemoryStoreAnalytics(t *testing.T) {
	s := NewMemoryStore()

	a, err := s.GetAnalytics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.TotalRequests != 0 {
		t.Fatalf("expected empty analytics, got %+v", a)
	}

	ctx := context.Background()
	s.SubmitInsertRequest(ctx, &types.RequestRecord{
		ID: "a", Status: types.StatusOK, ResponseChars: 100, Time: 200 * time.Millisecond,
	})
	s.SubmitInsertRequest(ctx, &types.RequestRecord{
		ID: "b", Status: types.StatusOK, CacheHit: true, ResponseChars: 100, Time: 10 * time.Millisecond,
	})
	s.SubmitInsertRequest(ctx, &types.RequestRecord{
		ID: "c", Status: types.StatusInterrupted, ResponseChars: 40, Time: 90 * time.Millisecond,
	})

	a, err = s.GetAnalytics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.TotalRequests != 3 || a.CacheHits != 1 || a.Errored != 1 {
		t.Fatalf("unexpected analytics %+v", a)
	}
	if a.AvgDurationMs != 100 {
		t.Fatalf("expected avg duration 100ms, got %v", a.AvgDurationMs)
	}
	if a.AvgResponseSize != 80 {
		t.Fatalf("expected avg size 80, got %v", a.AvgResponseSize)
	}
}
