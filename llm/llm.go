package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vaulto-labs/vaulto-gateway/types"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-3.5-turbo"

	// Bounded output and fixed sampling keep answers varied but not erratic.
	maxTokens   = 500
	temperature = 0.7
)

// systemPrompt is resent on every request; the server keeps no cross-request
// state. Not user-editable.
const systemPrompt = `You are Vaulto AI, an expert investment assistant for the Vaulto platform. Vaulto is a DeFi platform that offers:

## Stablecoins
- vltUSD: Fiat-backed stablecoin
- vltUSDy: Yield-bearing stablecoin (target 8.5% APY)
- vltUSDe: Crypto-native stablecoin

## Tokenized Assets
Real-world assets like stocks, commodities, and private companies represented as blockchain tokens

## Investment Strategies
Automated yield farming, liquidity provision, and DeFi strategies

## Key Features
Minting, swapping, vault management, and transparent on-chain operations

Instructions:
- Always format your responses using Markdown for better readability
- Use bold for important terms and concepts
- Use bullet points and numbered lists for structured information
- Use code blocks for technical terms or addresses
- Provide helpful, accurate, and educational responses about investments, DeFi, stablecoins, and tokenized assets
- Be conversational but professional
- If asked about specific Vaulto features, explain them clearly with proper formatting
- If asked about general investment advice, provide balanced guidance while noting that this is not financial advice
- Structure your responses with clear headings and organized information`

// ErrNotConfigured is returned by the disabled completer when no provider
// credential was supplied at startup.
var ErrNotConfigured = errors.New("llm: no API key configured")

// Completer is the upstream completion port the chat handler depends on.
// StreamCompletion invokes onDelta once per incremental token batch with the
// newly produced text only; a non-nil return from onDelta aborts the stream.
type Completer interface {
	StreamCompletion(ctx context.Context, message string, onDelta func(delta string) error) error
	Configured() bool
	Model() string
}

// OpenAI calls the chat-completions API in streaming mode over plain HTTP.
type OpenAI struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type Option func(*OpenAI)

func WithBaseURL(u string) Option {
	return func(o *OpenAI) {
		if u != "" {
			o.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithModel(m string) Option {
	return func(o *OpenAI) {
		if m != "" {
			o.model = m
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *OpenAI) { o.client = c }
}

// New builds the OpenAI completer. It fails fast on a missing key so callers
// can fall back to Disabled() instead of carrying a nil client around.
func New(apiKey string, opts ...Option) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	o := &OpenAI{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		client:  &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

func (o *OpenAI) Configured() bool { return true }

func (o *OpenAI) Model() string { return o.model }

type chatMessage struct {
	Role    types.Role `json:"role"`
	Content string     `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream"`
}

type chatCompletionChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (o *OpenAI) StreamCompletion(ctx context.Context, message string, onDelta func(delta string) error) error {
	body, err := json.Marshal(chatCompletionRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: types.RoleSystem, Content: systemPrompt},
			{Role: types.RoleUser, Content: message},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Stream:      true,
	})
	if err != nil {
		return fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("call completion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("completion API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read completion stream: %w", err)
		}

		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			return nil
		}

		var chunk chatCompletionChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// The upstream occasionally interleaves non-chunk events.
			slog.Debug("skipping unparseable upstream frame", "error", err)
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			if err := onDelta(delta); err != nil {
				return err
			}
		}
	}
}

// Disabled returns the tagged unconfigured variant of the Completer so the
// handler can answer 503 without ever dereferencing a nil client.
func Disabled() Completer { return disabled{} }

type disabled struct{}

func (disabled) StreamCompletion(context.Context, string, func(string) error) error {
	return ErrNotConfigured
}

func (disabled) Configured() bool { return false }

func (disabled) Model() string { return "" }
