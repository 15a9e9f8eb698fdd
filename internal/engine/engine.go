package engine

import (
	"fmt"
	"time"
)

// Engine is the pure pricing and admissibility core. It holds no
// mutable state beyond its policy and clock, so one instance is safe
// to share across concurrent requests.
type Engine struct {
	policy Policy
	now    func() time.Time
}

func New(policy Policy) *Engine {
	return &Engine{
		policy: policy,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the whole-day count of a stay. Same-day check-in is
// permitted; a check-in before today is not.
func (e *Engine) Nights(stay Stay) (int, error) {
	checkIn := day(stay.CheckIn)
	checkOut := day(stay.CheckOut)

	if !checkOut.After(checkIn) {
		return 0, ErrInvalidDateRange
	}

	if checkIn.Before(day(e.now())) {
		return 0, ErrPastCheckIn
	}

	return int(checkOut.Sub(checkIn).Hours() / 24), nil
}

// Discount converts a point redemption request into a monetary
// discount. Requesting more points than the account holds is a hard
// failure; requesting more than the subtotal covers is silently capped
// and the capped count is returned alongside the amount.
func (e *Engine) Discount(pointsRequested int, account LoyaltyAccount, subtotal Cents) (Cents, int, error) {
	if pointsRequested < 0 {
		return 0, 0, fmt.Errorf("points requested %d: %w", pointsRequested, ErrInsufficientPoints)
	}

	if pointsRequested > account.Balance {
		return 0, 0, fmt.Errorf("points requested %d, balance %d: %w", pointsRequested, account.Balance, ErrInsufficientPoints)
	}

	if e.policy.PointValue <= 0 {
		return 0, 0, nil
	}

	effective := pointsRequested

	if maxPoints := int(subtotal / e.policy.PointValue); effective > maxPoints {
		effective = maxPoints
	}

	return Cents(effective) * e.policy.PointValue, effective, nil
}

// Quote composes the full price breakdown for one stay. It is a pure
// function of its inputs and is meant to be re-invoked on every form
// change rather than cached.
func (e *Engine) Quote(room RoomOffer, stay Stay, pointsRequested int, account LoyaltyAccount) (*PriceBreakdown, error) {
	nights, err := e.Nights(stay)
	if err != nil {
		return nil, err
	}

	subtotal := Cents(nights) * room.Price

	discount, effectivePoints, err := e.Discount(pointsRequested, account, subtotal)
	if err != nil {
		return nil, err
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	tax := CentsFromAmount(total.Amount() * e.policy.TaxRate)

	return &PriceBreakdown{
		Nights:          nights,
		Subtotal:        subtotal,
		PointsDiscount:  discount,
		EffectivePoints: effectivePoints,
		Tax:             tax,
		Total:           total + tax,
		Currency:        room.Currency,
	}, nil
}

// ValidateBooking decides whether a booking request is locally
// admissible. An OCCUPIED room is provisionally bookable: occupied
// reflects the current moment, not the requested range, so the
// authoritative conflict check stays with the backend's availability
// endpoint. Success here is advisory only.
func (e *Engine) ValidateBooking(room RoomOffer, stay Stay, numberOfGuests int) error {
	inputErr := newInputError()

	if room.Status == RoomOutOfService {
		inputErr.addError("room.status", "room is out of service")
	}

	if numberOfGuests < 1 {
		inputErr.addError("numberOfGuests", "provide at least one guest")
	}

	if numberOfGuests > room.Capacity {
		inputErr.addError("numberOfGuests", fmt.Sprintf("room %v holds at most %d guests", room.Number, room.Capacity))
	}

	if _, err := e.Nights(stay); err != nil {
		inputErr.addError("stay", err.Error())
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}
