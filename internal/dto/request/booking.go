package request

type CreateBookingRequest struct {
	GuestName    string  `json:"guest_name" validate:"required,min=2,max=100"`
	GuestPhone   *string `json:"guest_phone,omitempty" validate:"omitempty,min=6,max=20"`
	RoomID       *string `json:"room_id,omitempty" validate:"omitempty,uuid4"`
	AreaID       *string `json:"area_id,omitempty" validate:"omitempty,uuid4"`
	CheckInDate  string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}

// BookingActionRequest carries the operator's input for a lifecycle
// action. Amount stays a pointer: an empty field and an explicit zero
// are different rejections.
type BookingActionRequest struct {
	Amount *float64 `json:"amount,omitempty" validate:"omitempty,min=0"`
	Reason string   `json:"reason,omitempty" validate:"omitempty,max=500"`
	Method *string  `json:"method,omitempty" validate:"omitempty,oneof=cash card transfer"`
}
