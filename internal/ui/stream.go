package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arin/ochat/internal/chat"
)

// escalationMsg replaces the spinner message when a reply has been
// pending for longer than chat.EscalationDwell. Cosmetic only; the
// request keeps running.
const escalationMsg = "Still thinking... (the model may be loading)"

// RenderStream consumes deltas from ch and writes chunks to w as they
// arrive, prepending prefix to the first one. The spinner, if given,
// stays active while waiting, escalates its message after the dwell,
// and is removed exactly once when output starts. Returns the full
// concatenated text and the stream error, if any.
func RenderStream(w io.Writer, ch <-chan chat.Delta, prefix string, sp *Spinner) (string, error) {
	sm := chat.NewStateMachine()
	_ = sm.Submit()

	var full strings.Builder
	first := true

	stopIndicator := func() {
		if sp != nil {
			sp.Stop()
			sp = nil
		}
	}
	defer stopIndicator()

	flush := func() {
		if full.Len() > 0 && !strings.HasSuffix(full.String(), "\n") {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	escalate := time.After(chat.EscalationDwell)
	for {
		select {
		case <-escalate:
			escalate = nil
			if sm.State() == chat.StateWaiting && sp != nil {
				sp.Update(escalationMsg)
			}
		case d, ok := <-ch:
			if !ok {
				flush()
				return strings.TrimSpace(full.String()), nil
			}
			_ = sm.Apply(d)
			if d.Err != nil {
				flush()
				return strings.TrimSpace(full.String()), d.Err
			}
			if d.Done {
				flush()
				return strings.TrimSpace(full.String()), nil
			}
			if d.Chunk == "" {
				continue
			}
			stopIndicator()
			if first {
				fmt.Fprint(w, prefix)
				first = false
			}
			fmt.Fprint(w, d.Chunk)
			full.WriteString(d.Chunk)
		}
	}
}
