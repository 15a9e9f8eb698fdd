package booking

import (
	"encoding/json"
	"time"

	"github.com/elodie-boweren/MyBooking-sub000/internal/engine"
)

const dateLayout = "2006-01-02"

// BookInput is everything one booking attempt needs: immutable
// snapshots of the room and loyalty account plus the form values.
type BookInput struct {
	Room           engine.RoomOffer      `json:"room"`
	Stay           engine.Stay           `json:"stay"`
	NumberOfGuests int                   `json:"numberOfGuests"`
	PointsUsed     int                   `json:"pointsUsed"`
	Account        engine.LoyaltyAccount `json:"account"`
}

// Request is the outbound reservation payload.
type Request struct {
	RoomID         string `json:"roomId"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	NumberOfGuests int    `json:"numberOfGuests"`
	PointsUsed     int    `json:"pointsUsed"`
	Currency       string `json:"currency"`
}

func newRequest(input *BookInput, pointsUsed int) *Request {
	return &Request{
		RoomID:         input.Room.ID,
		CheckIn:        input.Stay.CheckIn.UTC().Format(dateLayout),
		CheckOut:       input.Stay.CheckOut.UTC().Format(dateLayout),
		NumberOfGuests: input.NumberOfGuests,
		PointsUsed:     pointsUsed,
		Currency:       input.Room.Currency,
	}
}

// Confirmation is the backend's reservation confirmation, passed
// through to the caller as received.
type Confirmation struct {
	ID         json.Number  `json:"id"`
	Status     string       `json:"status"`
	TotalPrice engine.Cents `json:"totalPrice"`
	CreatedAt  *time.Time   `json:"createdAt,omitempty"`
}
