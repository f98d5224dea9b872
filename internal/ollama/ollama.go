// Package ollama manages the local Ollama daemon: liveness probes,
// model downloads and removal, and process control.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strings"
	"time"
)

var (
	// baseURL is a var so tests can point the package at a stub server.
	baseURL = "http://localhost:11434"
)

const (
	tagsPath     = "/api/tags"
	pullPath     = "/api/pull"
	probeTimeout = 3 * time.Second
)

// httpClient has no timeout: pulls stream progress for minutes.
// Probes wrap their context with probeTimeout instead.
var httpClient = &http.Client{}

// Running reports whether the local daemon answers on its API port.
func Running(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+tagsPath, nil)
	if err != nil {
		return false
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Models lists the models installed on the local daemon.
func Models(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+tagsPath, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not reach Ollama at %s — is it running? (start with: ochat server start)", baseURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Ollama API error (status %d)", resp.StatusCode)
	}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags response: %w", err)
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Start launches `ollama serve` in the background and returns without
// waiting for it.
func Start() error {
	cmd := exec.Command("ollama", "serve")
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("could not start ollama — is it installed? (https://ollama.com)")
	}
	return cmd.Process.Release()
}

// Stop terminates a running `ollama serve` process.
func Stop() error {
	if err := exec.Command("pkill", "-f", "ollama serve").Run(); err != nil {
		return fmt.Errorf("could not stop ollama: %w", err)
	}
	return nil
}

// Delete removes an installed model.
func Delete(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return fmt.Errorf("no model name given")
	}
	out, err := exec.Command("ollama", "rm", model).CombinedOutput()
	if err != nil {
		return fmt.Errorf("could not remove %s: %s", model, strings.TrimSpace(string(out)))
	}
	return nil
}

// Hostname returns the machine's hostname for use as the reply prefix
// in the chat view. Falls back to "ollama" when nothing better exists.
func Hostname() string {
	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name
		}
	}
	if name := os.Getenv("HOSTNAME"); name != "" {
		return name
	}
	if out, err := exec.Command("hostname").Output(); err == nil {
		if name := strings.TrimSpace(string(out)); name != "" {
			return name
		}
	}
	return "ollama"
}
