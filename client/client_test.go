package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"testing/iotest"
)

const goodStream = "data: {\"content\":\"Hello\"}\n\n" +
	"data: {\"content\":\"Hello world\"}\n\n" +
	"data: {\"content\":\"Hello world!\"}\n\n" +
	"data: [DONE]\n\n"

// splitReader yields the payload in caller-chosen slices so tests can place
// read boundaries in the middle of frames.
type splitReader struct {
	chunks []string
	i      int
}

func (r *splitReader) Read(p []byte) (int, error) {
	if r.i >= len(r.chunks) {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[r.i])
	if n < len(r.chunks[r.i]) {
		r.chunks[r.i] = r.chunks[r.i][n:]
	} else {
		r.i++
	}
	return n, nil
}

func collectChunks(t *testing.T, body io.Reader) ([]string, error) {
	t.Helper()
	var got []string
	c := New("http://unused")
	err := c.consume(body, func(cumulative string) {
		got = append(got, cumulative)
	})
	return got, err
}

func TestConsumeReassemblesSplitFrames(t *testing.T) {
	cases := map[string][]string{
		"mid-frame splits": {
			"data: {\"con", "tent\":\"Hello\"}\n\ndata: {\"content\":\"Hello w",
			"orld\"}\n\n", "data: {\"content\":\"Hello world!\"}\n\ndata: [DO", "NE]\n\n",
		},
		"one frame per read": {
			"data: {\"content\":\"Hello\"}\n\n",
			"data: {\"content\":\"Hello world\"}\n\n",
			"data: {\"content\":\"Hello world!\"}\n\n",
			"data: [DONE]\n\n",
		},
	}
	want := []string{"Hello", "Hello world", "Hello world!"}

	for name, chunks := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := collectChunks(t, &splitReader{chunks: chunks})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("expected %v, got %v", want, got)
			}
		})
	}

	t.Run("one byte per read", func(t *testing.T) {
		got, err := collectChunks(t, iotest.OneByteReader(&splitReader{chunks: []string{goodStream}}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})
}

func TestConsumeSkipsMalformedFrames(t *testing.T) {
	stream := "data: {\"content\":\"Hello\"}\n\n" +
		"data: {not valid json}\n\n" +
		"data: {\"content\":\"Hello world\"}\n\n" +
		"data: [DONE]\n\n"

	got, err := collectChunks(t, &splitReader{chunks: []string{stream}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Hello", "Hello world"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestConsumeStopsAtDone(t *testing.T) {
	stream := goodStream + "data: {\"content\":\"stray bytes after done\"}\n\n"

	got, err := collectChunks(t, &splitReader{chunks: []string{stream}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Hello", "Hello world", "Hello world!"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("frames after [DONE] must be ignored, got %v", got)
	}
}

func TestConsumeTreatsTruncationAsError(t *testing.T) {
	stream := "data: {\"content\":\"Hello\"}\n\n" // connection drops here

	got, err := collectChunks(t, &splitReader{chunks: []string{stream}})
	if !errors.Is(err, ErrStreamInterrupted) {
		t.Fatalf("expected ErrStreamInterrupted, got %v", err)
	}
	want := []string{"Hello", MsgTryAgain}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected partial answer then retry message, got %v", got)
	}
}

func TestConsumeHandlesTerminalErrorFrame(t *testing.T) {
	stream := "data: {\"content\":\"Hello\"}\n\n" +
		"data: {\"error\":\"The response was interrupted. Please try again.\"}\n\n"

	got, err := collectChunks(t, &splitReader{chunks: []string{stream}})
	if err == nil {
		t.Fatal("expected an error for a terminal error frame")
	}
	want := []string{"Hello", MsgTryAgain}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected partial answer then retry message, got %v", got)
	}
}

func TestStreamFallbackOnUnavailable(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusServiceUnavailable} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		defer srv.Close()

		var got []string
		err := New(srv.URL).Stream(context.Background(), "hi", "", func(cumulative string) {
			got = append(got, cumulative)
		})
		if err != nil {
			t.Fatalf("status %d: fallback must not surface an error, got %v", status, err)
		}
		if !reflect.DeepEqual(got, []string{MsgUnavailable}) {
			t.Fatalf("status %d: expected single unavailability message, got %v", status, got)
		}
	}
}

func TestStreamPropagatesOtherStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	var got []string
	err := New(srv.URL).Stream(context.Background(), "hi", "", func(cumulative string) {
		got = append(got, cumulative)
	})
	if err == nil {
		t.Fatal("expected an error for an unexpected status")
	}
	if len(got) != 0 {
		t.Fatalf("no chunks expected, got %v", got)
	}
}

func TestStreamEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		flusher := w.(http.Flusher)
		for _, cum := range []string{"Hello", "Hello world", "Hello world!"} {
			fmt.Fprintf(w, "data: {\"content\":%q}\n\n", cum)
			flusher.Flush()
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	answer, err := New(srv.URL).Ask(context.Background(), "say hello", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Hello world!" {
		t.Fatalf("expected final cumulative answer, got %q", answer)
	}
}
