package types

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatRequest is the body of POST /api/chat. Context is an optional label
// describing where in the UI the question was asked from.
type ChatRequest struct {
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

// StreamEvent is one data frame of the chat stream. Content always carries
// the full answer accumulated so far, not a delta. A frame with Error set is
// terminal and is never followed by [DONE].
type StreamEvent struct {
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the single error body shape used by every non-streaming
// failure path.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type RequestStatus string

const (
	StatusOK          RequestStatus = "ok"
	StatusErrored     RequestStatus = "errored"
	StatusInterrupted RequestStatus = "interrupted"
)

// RequestRecord is the telemetry row written for every chat request.
// It deliberately carries no message or answer text.
type RequestRecord struct {
	ID            string
	Context       string
	Model         string
	Status        RequestStatus
	CacheHit      bool
	ResponseChars int
	Frames        int
	Time          time.Duration
}

// Analytics is the aggregate returned by GET /api/stats.
type Analytics struct {
	TotalRequests   int     `json:"total_requests"`
	CacheHits       int     `json:"cache_hits"`
	Errored         int     `json:"errored"`
	AvgDurationMs   float64 `json:"avg_duration_ms"`
	AvgResponseSize float64 `json:"avg_response_chars"`
}

type Embedding []float32

// EmbeddingResult is what the embedding worker sends back on its channel.
type EmbeddingResult struct {
	Vector Embedding
	Query  string
	Err    error
}

// CachedAnswer is a semantic-cache hit: the stored question the query
// matched and the answer that was generated for it.
type CachedAnswer struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float32 `json:"score"`
}
