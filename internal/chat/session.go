package chat

import (
	"strings"

	"github.com/google/uuid"
)

// session tracks one submit-to-terminal cycle. It is owned exclusively
// by the in-flight request's read loop and discarded when the request
// reaches a terminal state.
type session struct {
	id string
	// text is append-only. Once a fragment has been emitted it is
	// never removed, even if the stream fails afterwards.
	text       strings.Builder
	started    bool
	terminated bool
}

func newSession() *session {
	return &session{id: uuid.NewString()}
}

// append records an emitted fragment.
func (s *session) append(chunk string) {
	s.text.WriteString(chunk)
	s.started = true
}

func (s *session) accumulated() string {
	return s.text.String()
}

func (s *session) finish() {
	s.terminated = true
}
