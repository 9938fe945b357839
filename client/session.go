package client

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type TurnStatus string

const (
	TurnSending   TurnStatus = "sending"
	TurnStreaming TurnStatus = "streaming"
	TurnDone      TurnStatus = "done"
	TurnFallback  TurnStatus = "fallback"
	TurnErrored   TurnStatus = "errored"
)

// Turn is one question/answer exchange. Its Answer is mutated in place while
// the stream runs and frozen once the turn reaches a terminal status.
type Turn struct {
	ID        string
	Question  string
	Answer    string
	Context   string
	Timestamp time.Time
	Status    TurnStatus
}

// Session tracks a list of turns for one open assistant panel. Each stream's
// updates are keyed to its own turn by identity, so a second question
// submitted while the first is still streaming can never interleave answers.
type Session struct {
	client       *Client
	contextLabel string

	mu      sync.Mutex
	turns   []*Turn
	cancels map[string]context.CancelFunc
}

func NewSession(c *Client, contextLabel string) *Session {
	return &Session{
		client:       c,
		contextLabel: contextLabel,
		cancels:      make(map[string]context.CancelFunc),
	}
}

// Ask streams the answer for question into a fresh turn and blocks until the
// turn reaches a terminal status. The returned turn is also visible through
// Turns() while it is still streaming.
func (s *Session) Ask(ctx context.Context, question string) (*Turn, error) {
	turn := &Turn{
		ID:        uuid.NewString(),
		Question:  question,
		Context:   s.contextLabel,
		Timestamp: time.Now(),
		Status:    TurnSending,
	}

	streamCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.turns = append(s.turns, turn)
	s.cancels[turn.ID] = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		delete(s.cancels, turn.ID)
		s.mu.Unlock()
	}()

	chunks := 0
	err := s.client.Stream(streamCtx, question, s.contextLabel, func(cumulative string) {
		s.mu.Lock()
		chunks++
		turn.Answer = cumulative
		turn.Status = TurnStreaming
		s.mu.Unlock()
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err != nil:
		turn.Status = TurnErrored
	case chunks == 1 && turn.Answer == MsgUnavailable:
		turn.Status = TurnFallback
	default:
		turn.Status = TurnDone
	}
	return turn, err
}

// Abort cancels the in-flight stream for the given turn, if any. The aborted
// turn ends up Errored with the retry message as its answer.
func (s *Session) Abort(turnID string) {
	s.mu.Lock()
	cancel, ok := s.cancels[turnID]
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

// Turns returns a snapshot of the conversation so far.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	for i, t := range s.turns {
		out[i] = *t
	}
	return out
}
