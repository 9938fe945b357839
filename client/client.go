// Package client consumes the gateway's chat stream: it posts a question,
// decodes the incremental data frames, and surfaces the growing answer
// through a callback. UI code never sees raw protocol fragments; every
// failure mode is translated into one of two fixed fallback messages.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vaulto-labs/vaulto-gateway/types"
)

const (
	// MsgUnavailable is shown when the relay answers 404 or 503.
	MsgUnavailable = "The Vaulto AI assistant is currently unavailable. Please check back later."
	// MsgTryAgain is shown when a stream breaks partway or the request
	// fails outright.
	MsgTryAgain = "I apologize, but I ran into a problem answering that. Please try again."

	doneSentinel = "[DONE]"
	dataPrefix   = "data: "
)

// ErrStreamInterrupted reports a stream that ended without a [DONE] frame.
var ErrStreamInterrupted = errors.New("chat stream ended before completion")

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No overall timeout: the read loop lives as long as the
		// stream; callers abort via ctx.
		http: &http.Client{},
	}
}

// Stream submits message and invokes onChunk with the cumulative answer text
// as frames arrive. Each invocation replaces the previous text, it does not
// append. On 404/503 onChunk receives MsgUnavailable once and Stream returns
// nil. On a transport failure or a broken stream onChunk receives MsgTryAgain
// and the underlying error is returned for logging. Cancelling ctx aborts the
// in-flight read.
func (c *Client) Stream(ctx context.Context, message, contextLabel string, onChunk func(cumulative string)) error {
	body, err := json.Marshal(types.ChatRequest{Message: message, Context: contextLabel})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		onChunk(MsgTryAgain)
		return fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusServiceUnavailable:
		// The relay is not deployed or has no credential. Tell the
		// user and stop; there is no body worth reading.
		onChunk(MsgUnavailable)
		return nil
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("chat request returned status %d", resp.StatusCode)
	}

	return c.consume(resp.Body, onChunk)
}

// consume reads the response body incrementally. Frames can be split at
// arbitrary byte boundaries by the transport, so a carry-over buffer holds
// the trailing partial line between reads.
func (c *Client) consume(body io.Reader, onChunk func(string)) error {
	buf := make([]byte, 4096)
	var carry string

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			carry += string(buf[:n])
			lines := strings.Split(carry, "\n")
			carry = lines[len(lines)-1]
			for _, line := range lines[:len(lines)-1] {
				done, err := c.handleLine(line, onChunk)
				if err != nil {
					onChunk(MsgTryAgain)
					return err
				}
				if done {
					// Terminal sentinel: anything after it
					// is ignored.
					return nil
				}
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				// The connection closed without a [DONE]; a
				// truncated answer must not pass as complete.
				onChunk(MsgTryAgain)
				return ErrStreamInterrupted
			}
			onChunk(MsgTryAgain)
			return fmt.Errorf("reading chat stream: %w", readErr)
		}
	}
}

func (c *Client) handleLine(line string, onChunk func(string)) (done bool, err error) {
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, dataPrefix) {
		return false, nil
	}
	payload := strings.TrimPrefix(line, dataPrefix)
	if payload == doneSentinel {
		return true, nil
	}

	var ev types.StreamEvent
	if jsonErr := json.Unmarshal([]byte(payload), &ev); jsonErr != nil {
		// A frame boundary can land mid-line in rare cases; one bad
		// frame must not take down the stream.
		slog.Debug("skipping malformed stream frame", "error", jsonErr)
		return false, nil
	}
	if ev.Error != "" {
		return false, fmt.Errorf("stream reported error: %s", ev.Error)
	}
	if ev.Content != "" {
		onChunk(ev.Content)
	}
	return false, nil
}

// Ask is a convenience wrapper that collects the whole answer.
func (c *Client) Ask(ctx context.Context, message, contextLabel string) (string, error) {
	var last string
	err := c.Stream(ctx, message, contextLabel, func(cumulative string) {
		last = cumulative
	})
	if err != nil {
		return "", err
	}
	return last, nil
}
