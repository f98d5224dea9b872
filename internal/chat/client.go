// Package chat implements the streaming client for the ochat gateway.
// The gateway fronts a local Ollama instance and frames replies as
// blank-line separated blocks of "data:" lines, terminated by the
// __END__ sentinel.
package chat

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultEndpoint = "http://localhost:3000"
	streamPath      = "/api/stream"
	statusPath      = "/api/status"
	statusTimeout   = 3 * time.Second

	eventStreamType = "text/event-stream"
)

const (
	// ErrNoResponseText is displayed when the stream fails before any
	// output arrived.
	ErrNoResponseText = "Error: could not reach the model server."
	// InterruptedMarker is appended when the stream fails after output
	// was already shown. Prior output is never discarded.
	InterruptedMarker = " [response interrupted]"
)

// Client communicates with the ochat gateway.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the gateway at endpoint. An empty
// endpoint selects the default local gateway.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		// No client-level timeout: a stalled stream is never forcibly
		// ended, and replies can take arbitrarily long to generate.
		httpClient: &http.Client{},
	}
}

// Submit sends a chat request and returns a channel of deltas. The
// channel emits zero or more text chunks followed by exactly one
// terminal delta (Done or Err), then closes.
//
// A request with a blank prompt or no model is declined silently:
// Submit returns nil and no session is created.
func (c *Client) Submit(ctx context.Context, req ChatRequest) <-chan Delta {
	if strings.TrimSpace(req.Prompt) == "" || req.Model == "" {
		return nil
	}
	ch := make(chan Delta)
	go c.stream(ctx, req, ch)
	return ch
}

func (c *Client) stream(ctx context.Context, req ChatRequest, ch chan<- Delta) {
	defer close(ch)

	sess := newSession()
	defer sess.finish()

	// fail emits the synthetic error text and the terminal error delta.
	// Before the first chunk the whole display becomes the fixed error
	// string; after it, a marker is appended to what was already shown.
	fail := func(err error) {
		text := ErrNoResponseText
		if sess.started {
			text = InterruptedMarker
		}
		sess.append(text)
		ch <- Delta{Chunk: text}
		ch <- Delta{Err: err}
	}

	body, err := json.Marshal(req)
	if err != nil {
		fail(fmt.Errorf("failed to marshal request: %w", err))
		return
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+streamPath, bytes.NewReader(body))
	if err != nil {
		fail(fmt.Errorf("failed to create request: %w", err))
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", eventStreamType)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		fail(fmt.Errorf("could not reach the gateway at %s — is it running?", c.endpoint))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		fail(fmt.Errorf("gateway error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw))))
		return
	}

	if !strings.HasPrefix(resp.Header.Get("Content-Type"), eventStreamType) {
		c.fallback(resp.Body, sess, ch, fail)
		return
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 2*1024*1024)
	scanner.Split(scanBlocks)

	for scanner.Scan() {
		for _, payload := range blockPayloads(scanner.Text()) {
			if payload == endSentinel {
				// Sentinel: cancel the underlying read and stop.
				// The sentinel itself is never emitted as a chunk.
				resp.Body.Close()
				ch <- Delta{Done: true}
				return
			}
			if payload == "" {
				continue
			}
			sess.append(payload)
			ch <- Delta{Chunk: payload}
		}
	}

	if err := scanner.Err(); err != nil {
		fail(fmt.Errorf("stream read failed: %w", err))
		return
	}

	// Body exhausted without the sentinel: normal completion.
	ch <- Delta{Done: true}
}

// fallback handles a non-streaming reply by emitting the whole body as
// a single terminal chunk. A JSON {"response": ...} body is unwrapped;
// anything else is used verbatim.
func (c *Client) fallback(r io.Reader, sess *session, ch chan<- Delta, fail func(error)) {
	raw, err := io.ReadAll(r)
	if err != nil {
		fail(fmt.Errorf("failed to read response: %w", err))
		return
	}

	text := strings.TrimSpace(string(raw))
	var fb fallbackResponse
	if err := json.Unmarshal(raw, &fb); err == nil && fb.Response != "" {
		text = fb.Response
	}

	if text != "" {
		sess.append(text)
		ch <- Delta{Chunk: text}
	}
	ch <- Delta{Done: true}
}

// Status reports whether the local Ollama daemon is running and which
// models it has installed. A gateway that cannot be reached is reported
// as not running rather than as an error.
func (c *Client) Status(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+statusPath, nil)
	if err != nil {
		return Status{}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Status{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Status{}
	}

	var st Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		// The daemon answered, even if the body was unexpected.
		return Status{Running: true}
	}
	return st
}
