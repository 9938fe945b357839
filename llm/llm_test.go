package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func upstreamFixture(t *testing.T, deltas []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", auth)
		}

		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding upstream request: %v", err)
		}
		if !req.Stream {
			t.Error("expected a streaming request")
		}
		if req.MaxTokens != 500 || req.Temperature != 0.7 {
			t.Errorf("unexpected sampling params: %d tokens, temp %v", req.MaxTokens, req.Temperature)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("unexpected message list: %+v", req.Messages)
		}
		if !strings.Contains(req.Messages[0].Content, "Vaulto") {
			t.Error("system prompt missing platform persona")
		}

		w.Header().Set("Content-Type", "text/event-stream")
		for _, d := range deltas {
			fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", d)
		}
		// Upstream interleaves housekeeping frames; the client skips them.
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{},\"finish_reason\":\"stop\"}]}\n\n")
		fmt.Fprint(w, ": keep-alive comment\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
}

func TestStreamCompletionDeliversDeltasInOrder(t *testing.T) {
	deltas := []string{"Hello", " world", "!"}
	srv := upstreamFixture(t, deltas)
	defer srv.Close()

	client, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	err = client.StreamCompletion(context.Background(), "say hello", func(delta string) error {
		got = append(got, delta)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, deltas) {
		t.Fatalf("expected %v, got %v", deltas, got)
	}
}

func TestStreamCompletionAbortsWhenCallbackFails(t *testing.T) {
	srv := upstreamFixture(t, []string{"one", "two", "three"})
	defer srv.Close()

	client, err := New("test-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := errors.New("writer gone")
	calls := 0
	err = client.StreamCompletion(context.Background(), "hi", func(delta string) error {
		calls++
		if calls == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error to propagate, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected the stream to stop after the failing callback, got %d calls", calls)
	}
}

func TestStreamCompletionSurfacesUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := New("bad-key", WithBaseURL(srv.URL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = client.StreamCompletion(context.Background(), "hi", func(string) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("expected a status error, got %v", err)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(""); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestDisabledCompleter(t *testing.T) {
	d := Disabled()
	if d.Configured() {
		t.Fatal("disabled completer must report unconfigured")
	}
	err := d.StreamCompletion(context.Background(), "hi", func(string) error { return nil })
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
