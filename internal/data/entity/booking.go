package entity

import (
	"time"

	"venue-reservation/internal/lifecycle"

	"github.com/google/uuid"
)

type Booking struct {
	Base
	OrderID         string           `db:"order_id"`
	GuestName       string           `db:"guest_name"`
	GuestPhone      *string          `db:"guest_phone"`
	RoomID          *uuid.UUID       `db:"room_id"`
	AreaID          *uuid.UUID       `db:"area_id"`
	CheckInDate     time.Time        `db:"check_in_date"`
	CheckOutDate    time.Time        `db:"check_out_date"`
	TotalPrice      float64          `db:"total_price"`
	DiscountedTotal *float64         `db:"discounted_total"`
	DownPayment     *float64         `db:"down_payment"`
	AmountPaid      float64          `db:"amount_paid"`
	Status          lifecycle.Status `db:"status"`
	StatusReason    *string          `db:"status_reason"`
}

// IsVenueBooking reports whether the booking is for an event area rather
// than a room. Display-only distinction; the lifecycle rules are identical.
func (b *Booking) IsVenueBooking() bool {
	return b.AreaID != nil
}

// Snapshot converts the stored record into the read-only form the
// lifecycle engine evaluates.
func (b *Booking) Snapshot() lifecycle.Booking {
	return lifecycle.Booking{
		ID:              b.ID.String(),
		Status:          b.Status,
		CheckInDate:     b.CheckInDate,
		CheckOutDate:    b.CheckOutDate,
		TotalPrice:      b.TotalPrice,
		DiscountedTotal: b.DiscountedTotal,
		DownPayment:     b.DownPayment,
		AmountPaid:      b.AmountPaid,
		VenueBooking:    b.IsVenueBooking(),
	}
}
