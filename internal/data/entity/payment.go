package entity

import (
	"github.com/google/uuid"
)

type PaymentKind string

const (
	PaymentKindDownPayment PaymentKind = "down_payment"
	PaymentKindBalance     PaymentKind = "balance"
)

// Payment is one recorded money movement against a booking. Amounts only
// ever accumulate; corrections happen upstream, never here.
type Payment struct {
	BaseSimple
	BookingID  uuid.UUID   `db:"booking_id"`
	Amount     float64     `db:"amount"`
	Kind       PaymentKind `db:"kind"`
	Method     *string     `db:"method"`
	RecordedBy uuid.UUID   `db:"recorded_by"`
}
