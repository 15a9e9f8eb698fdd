package engine

import "time"

type RoomType string

const (
	RoomSingle RoomType = "SINGLE"
	RoomDouble RoomType = "DOUBLE"
	RoomDeluxe RoomType = "DELUXE"
	RoomFamily RoomType = "FAMILY"
)

type RoomStatus string

const (
	RoomAvailable    RoomStatus = "AVAILABLE"
	RoomOccupied     RoomStatus = "OCCUPIED"
	RoomOutOfService RoomStatus = "OUT_OF_SERVICE"
)

// RoomOffer is a bookable room as the backend presents it. The engine
// treats it as a read-only snapshot taken at search time.
type RoomOffer struct {
	ID       string     `json:"id"`
	Number   string     `json:"number"`
	RoomType RoomType   `json:"roomType"`
	Capacity int        `json:"capacity"`
	Price    Cents      `json:"price"`
	Currency string     `json:"currency"`
	Status   RoomStatus `json:"status"`
}

// Stay is a check-in/check-out pair at whole-day granularity.
type Stay struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// LoyaltyAccount is a snapshot of a client's point balance.
type LoyaltyAccount struct {
	Balance int `json:"balance"`
}

// PriceBreakdown is the computed quote for one stay. EffectivePoints
// reports the point count after clamping so callers can show it back
// to the user instead of silently charging less than expected.
type PriceBreakdown struct {
	Nights          int    `json:"nights"`
	Subtotal        Cents  `json:"subtotal"`
	PointsDiscount  Cents  `json:"pointsDiscount"`
	EffectivePoints int    `json:"effectivePoints"`
	Tax             Cents  `json:"tax"`
	Total           Cents  `json:"total"`
	Currency        string `json:"currency"`
}
