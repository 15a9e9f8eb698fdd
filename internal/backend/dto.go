package backend

import (
	"encoding/json"
	"fmt"

	"github.com/elodie-boweren/MyBooking-sub000/internal/engine"
)

// Wire shapes are decoded into these DTOs and validated before
// anything downstream sees them. Required fields are pointers so a
// missing field is distinguishable from a zero one.

type roomDTO struct {
	ID       json.Number `json:"id"`
	Number   string      `json:"number"`
	RoomType string      `json:"roomType"`
	Capacity *int        `json:"capacity"`
	Price    *float64    `json:"price"`
	Currency string      `json:"currency"`
	Status   string      `json:"status"`
}

var roomTypes = map[string]engine.RoomType{
	string(engine.RoomSingle): engine.RoomSingle,
	string(engine.RoomDouble): engine.RoomDouble,
	string(engine.RoomDeluxe): engine.RoomDeluxe,
	string(engine.RoomFamily): engine.RoomFamily,
}

var roomStatuses = map[string]engine.RoomStatus{
	string(engine.RoomAvailable):    engine.RoomAvailable,
	string(engine.RoomOccupied):     engine.RoomOccupied,
	string(engine.RoomOutOfService): engine.RoomOutOfService,
}

func (d *roomDTO) toDomain() (engine.RoomOffer, error) {
	var zero engine.RoomOffer

	if d.ID.String() == "" {
		return zero, fmt.Errorf("room has no id")
	}

	roomType, ok := roomTypes[d.RoomType]
	if !ok {
		return zero, fmt.Errorf("room %v: unknown roomType %q", d.ID, d.RoomType)
	}

	status, ok := roomStatuses[d.Status]
	if !ok {
		return zero, fmt.Errorf("room %v: unknown status %q", d.ID, d.Status)
	}

	if d.Capacity == nil || *d.Capacity < 1 {
		return zero, fmt.Errorf("room %v: capacity missing or below 1", d.ID)
	}

	if d.Price == nil || *d.Price < 0 {
		return zero, fmt.Errorf("room %v: price missing or negative", d.ID)
	}

	if len(d.Currency) != 3 {
		return zero, fmt.Errorf("room %v: currency %q is not a 3-letter code", d.ID, d.Currency)
	}

	return engine.RoomOffer{
		ID:       d.ID.String(),
		Number:   d.Number,
		RoomType: roomType,
		Capacity: *d.Capacity,
		Price:    engine.CentsFromAmount(*d.Price),
		Currency: d.Currency,
		Status:   status,
	}, nil
}

type roomPageDTO struct {
	Content []roomDTO `json:"content"`
	Last    *bool     `json:"last"`
}

type availabilityDTO struct {
	Available *bool `json:"available"`
}

type loyaltyAccountDTO struct {
	Balance *int `json:"balance"`
}

func (d *loyaltyAccountDTO) toDomain() (engine.LoyaltyAccount, error) {
	if d.Balance == nil || *d.Balance < 0 {
		return engine.LoyaltyAccount{}, fmt.Errorf("balance missing or negative")
	}

	return engine.LoyaltyAccount{Balance: *d.Balance}, nil
}

type errorDTO struct {
	Message string `json:"message"`
}
