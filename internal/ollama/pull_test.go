package ollama

import (
	"context"
	"fmt"
	"net/http"
	"testing"
)

func drainPull(t *testing.T, ch <-chan PullProgress) []PullProgress {
	t.Helper()
	var updates []PullProgress
	for p := range ch {
		updates = append(updates, p)
	}
	if len(updates) == 0 {
		t.Fatal("expected at least one progress update")
	}
	last := updates[len(updates)-1]
	if !last.Done {
		t.Fatal("last update should be Done")
	}
	return updates
}

func TestPull_ProgressThenSuccess(t *testing.T) {
	stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"status":"pulling manifest"}`)
		fmt.Fprintln(w, `{"status":"pulling abc123","total":1000,"completed":250}`)
		fmt.Fprintln(w, `{"status":"pulling abc123","total":1000,"completed":1000}`)
		fmt.Fprintln(w, `{"status":"success"}`)
	}))

	updates := drainPull(t, Pull(context.Background(), "llama3"))
	if len(updates) != 4 {
		t.Fatalf("expected 4 updates, got %d: %+v", len(updates), updates)
	}
	if updates[1].Percent != 25 {
		t.Errorf("expected 25%%, got %v", updates[1].Percent)
	}
	if updates[1].Completed != 250 || updates[1].Total != 1000 {
		t.Errorf("unexpected byte counts: %+v", updates[1])
	}
	last := updates[3]
	if last.Err != nil || last.Percent != 100 {
		t.Errorf("unexpected final update: %+v", last)
	}
}

func TestPull_DaemonError(t *testing.T) {
	stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"status":"pulling manifest"}`)
		fmt.Fprintln(w, `{"error":"pull model manifest: file does not exist"}`)
	}))

	updates := drainPull(t, Pull(context.Background(), "nope"))
	last := updates[len(updates)-1]
	if last.Err == nil {
		t.Fatal("expected an error from the daemon")
	}
}

func TestPull_SkipsMalformedLines(t *testing.T) {
	stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `not json at all`)
		fmt.Fprintln(w, `{"status":"success"}`)
	}))

	updates := drainPull(t, Pull(context.Background(), "llama3"))
	if len(updates) != 1 {
		t.Fatalf("malformed line should be skipped, got %+v", updates)
	}
	if updates[0].Err != nil {
		t.Errorf("unexpected error: %v", updates[0].Err)
	}
}

func TestPull_DaemonUnreachable(t *testing.T) {
	ts := stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	updates := drainPull(t, Pull(context.Background(), "llama3"))
	if updates[len(updates)-1].Err == nil {
		t.Error("expected an error when the daemon is unreachable")
	}
}

func TestPull_StreamEndsWithoutSuccess(t *testing.T) {
	stubDaemon(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"status":"pulling manifest"}`)
	}))

	updates := drainPull(t, Pull(context.Background(), "llama3"))
	last := updates[len(updates)-1]
	if last.Err == nil {
		t.Error("a stream that ends without a success marker should error")
	}
}
