package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// PullProgress is one progress update from a model download.
type PullProgress struct {
	// Status is the daemon's phase description ("pulling manifest",
	// "verifying sha256 digest", ...).
	Status string
	// Completed and Total are byte counts for the current layer.
	Completed int64
	Total     int64
	// Percent is derived from Completed/Total; 0 when Total is unknown.
	Percent float64
	// Done marks the final update. Err is set if the pull failed.
	Done bool
	Err  error
}

// pullEvent is one NDJSON line from the daemon's pull stream.
type pullEvent struct {
	Status    string `json:"status"`
	Total     int64  `json:"total"`
	Completed int64  `json:"completed"`
	Error     string `json:"error"`
}

// Pull downloads a model, emitting progress updates as the daemon
// streams them. The channel closes after the final (Done) update.
// Cancelling the context aborts the download.
func Pull(ctx context.Context, model string) <-chan PullProgress {
	ch := make(chan PullProgress)
	go func() {
		defer close(ch)

		body, err := json.Marshal(map[string]string{"name": model})
		if err != nil {
			ch <- PullProgress{Done: true, Err: err}
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+pullPath, bytes.NewReader(body))
		if err != nil {
			ch <- PullProgress{Done: true, Err: err}
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			ch <- PullProgress{Done: true, Err: fmt.Errorf("could not reach Ollama at %s — is it running? (start with: ochat server start)", baseURL)}
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			ch <- PullProgress{Done: true, Err: fmt.Errorf("Ollama API error (status %d)", resp.StatusCode)}
			return
		}

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)

		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			var ev pullEvent
			if err := json.Unmarshal(line, &ev); err != nil {
				// Skip malformed lines.
				continue
			}

			p := PullProgress{
				Status:    ev.Status,
				Completed: ev.Completed,
				Total:     ev.Total,
			}
			if ev.Total > 0 {
				p.Percent = float64(ev.Completed) / float64(ev.Total) * 100
			}
			if ev.Error != "" {
				p.Done = true
				p.Err = errors.New(ev.Error)
			} else if ev.Status == "success" {
				p.Done = true
				p.Percent = 100
			}

			ch <- p
			if p.Done {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			ch <- PullProgress{Done: true, Err: fmt.Errorf("pull stream failed: %w", err)}
			return
		}
		// Stream ended without a success marker.
		ch <- PullProgress{Done: true, Err: errors.New("pull ended unexpectedly")}
	}()
	return ch
}

// HumanBytes renders a byte count for progress display.
func HumanBytes(n int64) string {
	const (
		kb = 1 << 10
		mb = kb << 10
		gb = mb << 10
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.1f GB", float64(n)/float64(gb))
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.1f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
