package engine

import (
	"errors"
	"testing"
	"time"
)

func testEngine(policy Policy, now time.Time) *Engine {
	e := New(policy)
	e.now = func() time.Time { return now }

	return e
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	now := date(2024, 6, 1)

	tests := []struct {
		name    string
		stay    Stay
		want    int
		wantErr error
	}{
		{
			name: "three nights",
			stay: Stay{CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 4)},
			want: 3,
		},
		{
			name: "single night",
			stay: Stay{CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 2)},
			want: 1,
		},
		{
			name: "shifted by a month, same length",
			stay: Stay{CheckIn: date(2024, 7, 1), CheckOut: date(2024, 7, 4)},
			want: 3,
		},
		{
			name: "time of day is ignored",
			stay: Stay{
				CheckIn:  time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC),
				CheckOut: time.Date(2024, 6, 4, 11, 0, 0, 0, time.UTC),
			},
			want: 3,
		},
		{
			name:    "check-out equals check-in",
			stay:    Stay{CheckIn: date(2024, 6, 2), CheckOut: date(2024, 6, 2)},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "check-out before check-in",
			stay:    Stay{CheckIn: date(2024, 6, 4), CheckOut: date(2024, 6, 1)},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "check-in yesterday",
			stay:    Stay{CheckIn: date(2024, 5, 31), CheckOut: date(2024, 6, 3)},
			wantErr: ErrPastCheckIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEngine(DefaultPolicy(), now)

			got, err := e.Nights(tt.stay)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Nights() error = %v, want %v", err, tt.wantErr)
			}

			if err == nil && got != tt.want {
				t.Fatalf("Nights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNightsSameDayCheckInPermitted(t *testing.T) {
	now := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	e := testEngine(DefaultPolicy(), now)

	got, err := e.Nights(Stay{CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 2)})
	if err != nil {
		t.Fatalf("Nights() unexpected error: %v", err)
	}

	if got != 1 {
		t.Fatalf("Nights() = %d, want 1", got)
	}
}

func TestDiscount(t *testing.T) {
	e := testEngine(DefaultPolicy(), date(2024, 6, 1))

	tests := []struct {
		name          string
		points        int
		balance       int
		subtotal      Cents
		wantDiscount  Cents
		wantEffective int
		wantErr       error
	}{
		{
			name:          "plain redemption",
			points:        1000,
			balance:       5000,
			subtotal:      30000,
			wantDiscount:  1000,
			wantEffective: 1000,
		},
		{
			name:          "zero points requested",
			points:        0,
			balance:       5000,
			subtotal:      30000,
			wantDiscount:  0,
			wantEffective: 0,
		},
		{
			name:          "capped at subtotal",
			points:        40000,
			balance:       50000,
			subtotal:      30000,
			wantDiscount:  30000,
			wantEffective: 30000,
		},
		{
			name:    "more points than owned",
			points:  10001,
			balance: 10000,
			wantErr: ErrInsufficientPoints,
		},
		{
			name:    "negative request",
			points:  -5,
			balance: 10000,
			wantErr: ErrInsufficientPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, effective, err := e.Discount(tt.points, LoyaltyAccount{Balance: tt.balance}, tt.subtotal)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Discount() error = %v, want %v", err, tt.wantErr)
			}

			if err != nil {
				return
			}

			if discount != tt.wantDiscount {
				t.Fatalf("Discount() amount = %v, want %v", discount, tt.wantDiscount)
			}

			if effective != tt.wantEffective {
				t.Fatalf("Discount() effective points = %d, want %d", effective, tt.wantEffective)
			}
		})
	}
}

func TestDiscountRedemptionDisabled(t *testing.T) {
	e := testEngine(Policy{PointValue: 0}, date(2024, 6, 1))

	discount, effective, err := e.Discount(100, LoyaltyAccount{Balance: 500}, 30000)
	if err != nil {
		t.Fatalf("Discount() unexpected error: %v", err)
	}

	if discount != 0 || effective != 0 {
		t.Fatalf("Discount() = (%v, %d), want (0, 0) with redemption disabled", discount, effective)
	}
}

func TestQuote(t *testing.T) {
	room := RoomOffer{
		ID:       "r-17",
		Number:   "204",
		RoomType: RoomDouble,
		Capacity: 2,
		Price:    10000, // 100.00 per night
		Currency: "EUR",
		Status:   RoomAvailable,
	}
	stay := Stay{CheckIn: date(2024, 6, 1), CheckOut: date(2024, 6, 4)}

	t.Run("three nights at 100", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), date(2024, 6, 1))

		got, err := e.Quote(room, stay, 0, LoyaltyAccount{})
		if err != nil {
			t.Fatalf("Quote() unexpected error: %v", err)
		}

		if got.Nights != 3 || got.Subtotal != 30000 || got.Total != 30000 {
			t.Fatalf("Quote() = %+v, want nights=3 subtotal=300.00 total=300.00", got)
		}
	})

	t.Run("balance binds before subtotal", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), date(2024, 6, 1))

		got, err := e.Quote(room, stay, 5000, LoyaltyAccount{Balance: 5000})
		if err != nil {
			t.Fatalf("Quote() unexpected error: %v", err)
		}

		if got.PointsDiscount != 5000 || got.Total != 25000 {
			t.Fatalf("Quote() = %+v, want discount=50.00 total=250.00", got)
		}
	})

	t.Run("total never negative", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), date(2024, 6, 1))

		got, err := e.Quote(room, stay, 50000, LoyaltyAccount{Balance: 100000})
		if err != nil {
			t.Fatalf("Quote() unexpected error: %v", err)
		}

		if got.Total != 0 || got.PointsDiscount != got.Subtotal || got.EffectivePoints != 30000 {
			t.Fatalf("Quote() = %+v, want total=0 discount=subtotal effectivePoints=30000", got)
		}
	})

	t.Run("tax on post-discount total", func(t *testing.T) {
		e := testEngine(Policy{PointValue: 1, TaxRate: 0.10}, date(2024, 6, 1))

		got, err := e.Quote(room, stay, 5000, LoyaltyAccount{Balance: 5000})
		if err != nil {
			t.Fatalf("Quote() unexpected error: %v", err)
		}

		if got.Tax != 2500 || got.Total != 27500 {
			t.Fatalf("Quote() = %+v, want tax=25.00 total=275.00", got)
		}
	})

	t.Run("pure function", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), date(2024, 6, 1))

		first, err := e.Quote(room, stay, 2000, LoyaltyAccount{Balance: 5000})
		if err != nil {
			t.Fatalf("Quote() unexpected error: %v", err)
		}

		second, err := e.Quote(room, stay, 2000, LoyaltyAccount{Balance: 5000})
		if err != nil {
			t.Fatalf("Quote() unexpected error: %v", err)
		}

		if *first != *second {
			t.Fatalf("Quote() not deterministic: %+v vs %+v", first, second)
		}
	})

	t.Run("date errors propagate unchanged", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), date(2024, 6, 1))

		_, err := e.Quote(room, Stay{CheckIn: date(2024, 6, 4), CheckOut: date(2024, 6, 1)}, 0, LoyaltyAccount{})
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("Quote() error = %v, want ErrInvalidDateRange", err)
		}
	})
}

func TestValidateBooking(t *testing.T) {
	now := date(2024, 6, 1)
	stay := Stay{CheckIn: date(2024, 6, 10), CheckOut: date(2024, 6, 12)}

	room := func(status RoomStatus) RoomOffer {
		return RoomOffer{ID: "r-1", Number: "101", Capacity: 4, Price: 9000, Currency: "EUR", Status: status}
	}

	t.Run("available room passes", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), now)

		if err := e.ValidateBooking(room(RoomAvailable), stay, 2); err != nil {
			t.Fatalf("ValidateBooking() unexpected error: %v", err)
		}
	})

	t.Run("occupied room is provisionally bookable", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), now)

		if err := e.ValidateBooking(room(RoomOccupied), stay, 2); err != nil {
			t.Fatalf("ValidateBooking() rejected an occupied room locally: %v", err)
		}
	})

	t.Run("out of service always rejected", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), now)

		err := e.ValidateBooking(room(RoomOutOfService), stay, 2)

		inputErr := IsInputError(err)
		if inputErr == nil {
			t.Fatalf("ValidateBooking() = %v, want InputError", err)
		}

		if _, ok := inputErr.Fields()["room.status"]; !ok {
			t.Fatalf("ValidateBooking() fields = %+v, want room.status", inputErr.Fields())
		}
	})

	t.Run("capacity exceeded", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), now)

		err := e.ValidateBooking(room(RoomAvailable), stay, 5)

		inputErr := IsInputError(err)
		if inputErr == nil {
			t.Fatalf("ValidateBooking() = %v, want InputError", err)
		}

		if _, ok := inputErr.Fields()["numberOfGuests"]; !ok {
			t.Fatalf("ValidateBooking() fields = %+v, want numberOfGuests", inputErr.Fields())
		}
	})

	t.Run("zero guests", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), now)

		if err := e.ValidateBooking(room(RoomAvailable), stay, 0); IsInputError(err) == nil {
			t.Fatalf("ValidateBooking() = %v, want InputError", err)
		}
	})

	t.Run("past check-in", func(t *testing.T) {
		e := testEngine(DefaultPolicy(), now)

		past := Stay{CheckIn: date(2024, 5, 31), CheckOut: date(2024, 6, 2)}

		err := e.ValidateBooking(room(RoomAvailable), past, 2)

		inputErr := IsInputError(err)
		if inputErr == nil {
			t.Fatalf("ValidateBooking() = %v, want InputError", err)
		}

		if _, ok := inputErr.Fields()["stay"]; !ok {
			t.Fatalf("ValidateBooking() fields = %+v, want stay", inputErr.Fields())
		}
	})
}
