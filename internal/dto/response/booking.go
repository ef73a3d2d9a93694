package response

import (
	"time"

	"venue-reservation/internal/data/entity"
	"venue-reservation/internal/lifecycle"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	OrderID         string               `json:"order_id"`
	GuestName       string               `json:"guest_name"`
	GuestPhone      *string              `json:"guest_phone,omitempty"`
	RoomID          *string              `json:"room_id,omitempty"`
	AreaID          *string              `json:"area_id,omitempty"`
	VenueBooking    bool                 `json:"venue_booking"`
	CheckInDate     string               `json:"check_in_date"`
	CheckOutDate    string               `json:"check_out_date"`
	TotalPrice      float64              `json:"total_price"`
	DiscountedTotal *float64             `json:"discounted_total,omitempty"`
	DownPayment     *float64             `json:"down_payment,omitempty"`
	AmountPaid      float64              `json:"amount_paid"`
	Status          string               `json:"status"`
	StatusReason    *string              `json:"status_reason,omitempty"`
	Money           lifecycle.MoneyState `json:"money"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	var roomID, areaID *string
	if b.RoomID != nil {
		s := b.RoomID.String()
		roomID = &s
	}
	if b.AreaID != nil {
		s := b.AreaID.String()
		areaID = &s
	}

	return BookingResponse{
		ID:              b.ID.String(),
		OrderID:         b.OrderID,
		GuestName:       b.GuestName,
		GuestPhone:      b.GuestPhone,
		RoomID:          roomID,
		AreaID:          areaID,
		VenueBooking:    b.IsVenueBooking(),
		CheckInDate:     b.CheckInDate.Format("2006-01-02"),
		CheckOutDate:    b.CheckOutDate.Format("2006-01-02"),
		TotalPrice:      b.TotalPrice,
		DiscountedTotal: b.DiscountedTotal,
		DownPayment:     b.DownPayment,
		AmountPaid:      b.AmountPaid,
		Status:          string(b.Status),
		StatusReason:    b.StatusReason,
		Money:           lifecycle.Resolve(b.Snapshot()),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// BookingActionsResponse tells the UI which controls to enable and what
// the booking's money position is right now.
type BookingActionsResponse struct {
	BookingID string               `json:"booking_id"`
	Status    string               `json:"status"`
	Actions   []string             `json:"actions"`
	Money     lifecycle.MoneyState `json:"money"`
}

// TransitionResponse is returned after an action is applied.
type TransitionResponse struct {
	Booking             BookingResponse `json:"booking"`
	AmountSubmitted     float64         `json:"amount_submitted"`
	WillCompletePayment bool            `json:"will_complete_payment,omitempty"`
}

type PaymentResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Amount    float64   `json:"amount"`
	Kind      string    `json:"kind"`
	Method    *string   `json:"method,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID.String(),
		BookingID: p.BookingID.String(),
		Amount:    p.Amount,
		Kind:      string(p.Kind),
		Method:    p.Method,
		CreatedAt: p.CreatedAt,
	}
}
