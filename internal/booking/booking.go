package booking

import (
	"context"
	"fmt"

	"github.com/elodie-boweren/MyBooking-sub000/internal/engine"
	"github.com/elodie-boweren/MyBooking-sub000/internal/logger"
)

// Submitter is the external reservation backend as this package needs
// it. The real implementation lives in internal/backend.
type Submitter interface {
	RoomAvailable(ctx context.Context, roomID string, stay engine.Stay) (bool, error)
	CreateReservation(ctx context.Context, req *Request) (*Confirmation, error)
}

type Manager struct {
	l         *logger.Logger
	engine    *engine.Engine
	submitter Submitter
}

func New(l *logger.Logger, eng *engine.Engine, submitter Submitter) *Manager {
	return &Manager{
		l:         l,
		engine:    eng,
		submitter: submitter,
	}
}

// Book runs one booking attempt end to end: local validation, the
// backend's availability check, then exactly one reservation call.
// The submit call is never retried; a duplicate booking is worse than
// a failed one, and the backend performs the authoritative conflict
// check at submission time anyway.
func (m *Manager) Book(ctx context.Context, input *BookInput) (_ *Confirmation, err error) {
	attempt := newAttempt()

	defer func() {
		m.l.LogInfo("Booking attempt %v finished in state %v", attempt.ID, attempt.State())
	}()

	if err := attempt.transition(StateValidating); err != nil {
		return nil, err
	}

	if err := m.engine.ValidateBooking(input.Room, input.Stay, input.NumberOfGuests); err != nil {
		_ = attempt.transition(StateRejected)

		return nil, err
	}

	// The quote repeats the date checks and enforces the points
	// rules; its clamped point count is what actually gets sent.
	quote, err := m.engine.Quote(input.Room, input.Stay, input.PointsUsed, input.Account)
	if err != nil {
		_ = attempt.transition(StateRejected)

		return nil, err
	}

	available, err := m.submitter.RoomAvailable(ctx, input.Room.ID, input.Stay)
	if err != nil {
		_ = attempt.transition(StateRejected)

		return nil, fmt.Errorf("check availability for room %v: %w", input.Room.ID, err)
	}

	if !available {
		_ = attempt.transition(StateRejected)

		availabilityErr := NewAvailabilityError()
		availabilityErr.AddUnavailableRoom(input.Room.ID, input.Stay)

		return nil, availabilityErr
	}

	if err := attempt.transition(StateSubmitting); err != nil {
		return nil, err
	}

	out, err := m.submitter.CreateReservation(ctx, newRequest(input, quote.EffectivePoints))
	if err != nil {
		_ = attempt.transition(StateFailed)

		return nil, err
	}

	if err := attempt.transition(StateConfirmed); err != nil {
		return nil, err
	}

	m.l.LogInfo("Reservation %v confirmed for room %v, total %v %v", out.ID, input.Room.ID, out.TotalPrice, input.Room.Currency)

	return out, nil
}
