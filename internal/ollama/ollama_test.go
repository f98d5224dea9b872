package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// stubDaemon points the package at a test server and restores the real
// base URL afterwards.
func stubDaemon(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(handler)
	orig := baseURL
	baseURL = ts.URL
	t.Cleanup(func() {
		baseURL = orig
		ts.Close()
	})
	return ts
}

func TestRunning_DaemonUp(t *testing.T) {
	stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"models":[]}`)
	}))

	if !Running(context.Background()) {
		t.Error("expected running=true")
	}
}

func TestRunning_DaemonDown(t *testing.T) {
	ts := stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	if Running(context.Background()) {
		t.Error("expected running=false")
	}
}

func TestModels_ParsesTags(t *testing.T) {
	stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"models":[{"name":"llama3:latest"},{"name":"mistral:7b"}]}`)
	}))

	models, err := Models(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 2 || models[0] != "llama3:latest" || models[1] != "mistral:7b" {
		t.Errorf("unexpected models: %v", models)
	}
}

func TestModels_DaemonDown(t *testing.T) {
	ts := stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	if _, err := Models(context.Background()); err == nil {
		t.Error("expected an error when the daemon is down")
	}
}

func TestDelete_EmptyName(t *testing.T) {
	if err := Delete("  "); err == nil {
		t.Error("expected an error for a blank model name")
	}
}

func TestHostname_NeverEmpty(t *testing.T) {
	if Hostname() == "" {
		t.Error("hostname should always fall back to a non-empty value")
	}
}

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 << 20, "5.0 MB"},
		{3 << 30, "3.0 GB"},
	}
	for _, c := range cases {
		if got := HumanBytes(c.n); got != c.want {
			t.Errorf("HumanBytes(%d): expected %q, got %q", c.n, c.want, got)
		}
	}
}
