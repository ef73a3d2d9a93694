package lifecycle

import "time"

// Booking is the snapshot the engine evaluates. It is read-only here:
// the engine never mutates it, only the booking-update layer does.
type Booking struct {
	ID              string
	Status          Status
	CheckInDate     time.Time // calendar date, time component ignored
	CheckOutDate    time.Time
	TotalPrice      float64
	DiscountedTotal *float64 // room/area discount override, supersedes TotalPrice when set
	DownPayment     *float64 // deposit collected at reservation time
	AmountPaid      float64  // cumulative reconciled payments
	VenueBooking    bool
}

// MoneyState is the effective monetary position of a booking, computed
// fresh on every query and never persisted.
type MoneyState struct {
	EffectiveTotal   float64 `json:"effective_total"`
	AmountCollected  float64 `json:"amount_collected"`
	RemainingBalance float64 `json:"remaining_balance"`
	FullyPaid        bool    `json:"fully_paid"`
}

// Resolve computes the effective money state for a booking. Malformed
// negative inputs are clamped to 0 rather than rejected; a zero
// AmountPaid means the backend has not reconciled the down payment yet,
// so the deposit stands in for it.
func Resolve(b Booking) MoneyState {
	effectiveTotal := b.TotalPrice
	if b.DiscountedTotal != nil && *b.DiscountedTotal >= 0 {
		effectiveTotal = *b.DiscountedTotal
	}
	if effectiveTotal < 0 {
		effectiveTotal = 0
	}

	collected := b.AmountPaid
	if collected <= 0 {
		collected = 0
		if b.DownPayment != nil && *b.DownPayment > 0 {
			collected = *b.DownPayment
		}
	}

	remaining := effectiveTotal - collected
	if remaining < 0 {
		remaining = 0
	}

	return MoneyState{
		EffectiveTotal:   effectiveTotal,
		AmountCollected:  collected,
		RemainingBalance: remaining,
		FullyPaid:        collected >= effectiveTotal || remaining == 0,
	}
}
