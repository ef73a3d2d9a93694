package lifecycle

// ReasonCode identifies why a transition was refused. These are expected,
// operator-correctable conditions, not faults, so they travel as values
// rather than errors.
type ReasonCode string

const (
	ReasonAmountTooLow         ReasonCode = "AmountTooLow"
	ReasonAmountTooHigh        ReasonCode = "AmountTooHigh"
	ReasonAmountEmpty          ReasonCode = "AmountEmpty"
	ReasonAmountZero           ReasonCode = "AmountZero"
	ReasonAmountExceedsBalance ReasonCode = "AmountExceedsBalance"
	ReasonNotYetCheckInDate    ReasonCode = "NotYetCheckInDate"
	ReasonTooEarly             ReasonCode = "TooEarly"
	ReasonPaymentRequired      ReasonCode = "PaymentRequired"
	ReasonCheckInDateExpired   ReasonCode = "CheckInDateExpired"
	ReasonReasonRequired       ReasonCode = "ReasonRequired"
	ReasonInvalidTransition    ReasonCode = "InvalidTransition"
)

// Decision is the outcome of validating a proposed transition: either an
// authorization carrying the amount to submit, or a structured rejection.
type Decision struct {
	Authorized bool       `json:"authorized"`
	Amount     float64    `json:"amount,omitempty"`
	NextStatus Status     `json:"next_status,omitempty"`
	Code       ReasonCode `json:"code,omitempty"`
	Message    string     `json:"message,omitempty"`

	// WillCompletePayment is set on authorized payments that cover the
	// whole outstanding balance, so the caller can surface a
	// "booking will be fully paid" prompt.
	WillCompletePayment bool `json:"will_complete_payment,omitempty"`
}

func authorize(next Status, amount float64) Decision {
	return Decision{Authorized: true, NextStatus: next, Amount: amount}
}

func reject(code ReasonCode, message string) Decision {
	return Decision{Authorized: false, Code: code, Message: message}
}
