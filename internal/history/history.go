// Package history manages saved chat transcripts for ochat.
// Transcripts are stored as a JSON file in the user's config directory.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arin/ochat/internal/config"
)

const (
	fileName   = "history.json"
	maxEntries = 500
)

// fileMu guards concurrent access to the history file.
var fileMu sync.Mutex

// Transcript records a single prompt/reply exchange.
type Transcript struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Model     string    `json:"model"`
	Runner    string    `json:"runner,omitempty"`
	Prompt    string    `json:"prompt"`
	Reply     string    `json:"reply"`
	Success   bool      `json:"success"`
}

func historyPath() string {
	return filepath.Join(config.Dir(), fileName)
}

// Save appends a new transcript to the history file, assigning it an
// ID and timestamp.
func Save(t Transcript) error {
	fileMu.Lock()
	defer fileMu.Unlock()

	t.ID = uuid.NewString()
	t.Timestamp = time.Now()

	entries, _ := loadAll()
	entries = append(entries, t)

	// Trim to max entries, keeping the most recent.
	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	if err := os.MkdirAll(config.Dir(), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(historyPath(), data, 0o600)
}

// Load returns the most recent n transcripts.
func Load(limit int) ([]Transcript, error) {
	entries, err := loadAll()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	return entries, nil
}

func loadAll() ([]Transcript, error) {
	data, err := os.ReadFile(historyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Transcript
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
