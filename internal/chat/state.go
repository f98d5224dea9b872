package chat

import (
	"fmt"
	"time"
)

// State is one phase of a chat session's presentation lifecycle.
type State int

const (
	// StateIdle means no request is in flight.
	StateIdle State = iota
	// StateWaiting means the request was sent but no chunk has arrived.
	StateWaiting
	// StateProducing means at least one chunk has arrived.
	StateProducing
	// StateDone means the stream completed normally. Terminal.
	StateDone
	// StateErrored means the stream failed. Terminal.
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWaiting:
		return "waiting"
	case StateProducing:
		return "producing"
	case StateDone:
		return "done"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// EscalationDwell is how long a session sits in StateWaiting before the
// escalation cue activates. The cue is cosmetic: the request is not
// cancelled and no deadline is enforced.
const EscalationDwell = 10 * time.Second

// StateMachine drives the presentation states of one chat session.
// Transitions: Idle → Waiting → Producing → Done, with Waiting or
// Producing also allowed to move to Errored. Terminal states reject
// all further transitions.
type StateMachine struct {
	state        State
	waitingSince time.Time

	// now is a test hook.
	now func() time.Time
}

// NewStateMachine creates a machine in StateIdle.
func NewStateMachine() *StateMachine {
	return &StateMachine{state: StateIdle, now: time.Now}
}

// State returns the current state.
func (m *StateMachine) State() State {
	return m.state
}

// Terminal reports whether no further transitions are possible.
func (m *StateMachine) Terminal() bool {
	return m.state == StateDone || m.state == StateErrored
}

// Submit moves Idle → Waiting and starts the escalation clock.
func (m *StateMachine) Submit() error {
	if m.state != StateIdle {
		return m.invalid("submit")
	}
	m.state = StateWaiting
	m.waitingSince = m.now()
	return nil
}

// Chunk records an arriving text chunk. The first chunk moves
// Waiting → Producing; later chunks leave the state unchanged.
func (m *StateMachine) Chunk() error {
	switch m.state {
	case StateWaiting:
		m.state = StateProducing
		return nil
	case StateProducing:
		return nil
	}
	return m.invalid("chunk")
}

// Finish moves Waiting or Producing → Done. A stream that ends before
// any chunk arrives goes straight from Waiting to Done.
func (m *StateMachine) Finish() error {
	switch m.state {
	case StateWaiting, StateProducing:
		m.state = StateDone
		return nil
	}
	return m.invalid("finish")
}

// Fail moves Waiting or Producing → Errored.
func (m *StateMachine) Fail() error {
	switch m.state {
	case StateWaiting, StateProducing:
		m.state = StateErrored
		return nil
	}
	return m.invalid("fail")
}

// Apply maps a stream delta onto the corresponding transition.
func (m *StateMachine) Apply(d Delta) error {
	switch {
	case d.Err != nil:
		return m.Fail()
	case d.Done:
		return m.Finish()
	default:
		return m.Chunk()
	}
}

// Escalated reports whether the session has sat in StateWaiting for at
// least EscalationDwell without receiving a chunk.
func (m *StateMachine) Escalated() bool {
	return m.state == StateWaiting && m.now().Sub(m.waitingSince) >= EscalationDwell
}

func (m *StateMachine) invalid(event string) error {
	return fmt.Errorf("invalid transition: %s while %s", event, m.state)
}
