package booking

import (
	"fmt"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle       State = "Idle"
	StateValidating State = "Validating"
	StateSubmitting State = "Submitting"
	StateRejected   State = "Rejected"
	StateConfirmed  State = "Confirmed"
	StateFailed     State = "Failed"
)

var transitions = map[State][]State{
	StateIdle:       {StateValidating},
	StateValidating: {StateRejected, StateSubmitting},
	StateSubmitting: {StateConfirmed, StateFailed},
	// Rejected, Confirmed and Failed are terminal; a new attempt
	// starts a fresh instance.
}

// Attempt tracks one booking attempt through its lifecycle.
type Attempt struct {
	ID    uuid.UUID
	state State
}

func newAttempt() *Attempt {
	return &Attempt{
		ID:    uuid.New(),
		state: StateIdle,
	}
}

func (a *Attempt) State() State {
	return a.state
}

func (a *Attempt) transition(next State) error {
	for _, allowed := range transitions[a.state] {
		if next == allowed {
			a.state = next

			return nil
		}
	}

	return fmt.Errorf("attempt %v: transition %v -> %v: %w", a.ID, a.state, next, ErrIllegalTransition)
}
