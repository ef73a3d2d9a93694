package lifecycle

import (
	"fmt"
	"strings"
	"time"
)

// DefaultCheckInHour is the earliest hour of the check-in day at which
// a guest may be checked in. The boundary is inclusive: 14:00:00 exactly
// already authorizes.
const DefaultCheckInHour = 14

// TransitionRequest is a proposed operator action against one booking
// snapshot. Now is injected explicitly so decisions are reproducible.
type TransitionRequest struct {
	Action Action
	Amount *float64 // operator-entered amount, nil when the field was left empty
	Reason string   // cancellation/rejection reason
	Now    time.Time
}

// Validator evaluates transition requests. It holds no mutable state and
// is safe for concurrent use.
type Validator struct {
	CheckInHour int
}

func NewValidator() *Validator {
	return &Validator{CheckInHour: DefaultCheckInHour}
}

// Validate decides whether the requested action is legal for the booking
// snapshot. Every outcome is a Decision value; there are no error returns
// because rejections are expected, operator-correctable conditions.
func (v *Validator) Validate(b Booking, req TransitionRequest) Decision {
	next, ok := b.Status.NextStatus(req.Action)
	if !ok {
		return reject(ReasonInvalidTransition,
			fmt.Sprintf("action %s is not allowed while booking is %s", req.Action, b.Status))
	}

	switch req.Action {
	case ActionReserve:
		return v.validateReserve(b, req, next)
	case ActionCheckIn:
		return v.validateCheckIn(b, req, next)
	case ActionMarkNoShow:
		return v.validateNoShow(b, req, next)
	case ActionRecordPayment:
		return v.validatePayment(b, req, next)
	case ActionCancel, ActionReject:
		if strings.TrimSpace(req.Reason) == "" {
			return reject(ReasonReasonRequired, "a reason is required")
		}
		return authorize(next, 0)
	default:
		// CheckOut has no guard once the guest is in.
		return authorize(next, 0)
	}
}

// validateReserve checks the down payment band. The original quoted total
// is used here, not the discount override: no room/area discount applies
// before the reservation is confirmed.
func (v *Validator) validateReserve(b Booking, req TransitionRequest, next Status) Decision {
	if req.Amount == nil {
		return reject(ReasonAmountEmpty, "enter a down payment amount")
	}
	amount := *req.Amount
	if amount < b.TotalPrice/2 {
		return reject(ReasonAmountTooLow,
			fmt.Sprintf("down payment must be at least half of the total price (%.2f)", b.TotalPrice/2))
	}
	if amount > b.TotalPrice {
		return reject(ReasonAmountTooHigh,
			fmt.Sprintf("down payment cannot exceed the total price (%.2f)", b.TotalPrice))
	}
	return authorize(next, amount)
}

// validateCheckIn applies the temporal gates before the payment gate;
// the first failing guard determines the message the operator sees.
func (v *Validator) validateCheckIn(b Booking, req TransitionRequest, next Status) Decision {
	switch {
	case dateBefore(req.Now, b.CheckInDate):
		return reject(ReasonNotYetCheckInDate,
			fmt.Sprintf("check-in opens on %s", b.CheckInDate.Format("2006-01-02")))

	case sameDate(req.Now, b.CheckInDate):
		if req.Now.Hour() < v.CheckInHour {
			return reject(ReasonTooEarly,
				fmt.Sprintf("check-in opens at %02d:00", v.CheckInHour))
		}

		money := Resolve(b)
		if money.FullyPaid {
			amount := amountOrZero(req.Amount)
			if amount < 0 {
				return reject(ReasonAmountZero, "payment amount cannot be negative")
			}
			d := authorize(next, amount)
			d.WillCompletePayment = true
			return d
		}
		if req.Amount != nil && *req.Amount == money.RemainingBalance {
			// Paying exactly the outstanding balance as part of check-in.
			d := authorize(next, *req.Amount)
			d.WillCompletePayment = true
			return d
		}
		return reject(ReasonPaymentRequired,
			fmt.Sprintf("booking must be fully paid before check-in (%.2f outstanding)", money.RemainingBalance))

	default:
		// Advisory: the booking is a candidate for mark no-show instead.
		return reject(ReasonCheckInDateExpired,
			"the check-in date has passed; mark the booking as no-show instead")
	}
}

func (v *Validator) validateNoShow(b Booking, req TransitionRequest, next Status) Decision {
	if !dateBefore(b.CheckInDate, req.Now) {
		return reject(ReasonNotYetCheckInDate,
			"a booking can only be marked no-show after its check-in date has passed")
	}
	return authorize(next, 0)
}

func (v *Validator) validatePayment(b Booking, req TransitionRequest, next Status) Decision {
	if req.Amount == nil {
		return reject(ReasonAmountEmpty, "enter a payment amount")
	}
	amount := *req.Amount
	if amount < 0 {
		return reject(ReasonAmountZero, "payment amount cannot be negative")
	}
	money := Resolve(b)
	if amount > money.RemainingBalance {
		return reject(ReasonAmountExceedsBalance,
			fmt.Sprintf("amount exceeds the remaining balance (%.2f)", money.RemainingBalance))
	}
	if amount == 0 && money.RemainingBalance > 0 {
		return reject(ReasonAmountZero, "payment amount cannot be zero")
	}
	d := authorize(next, amount)
	d.WillCompletePayment = amount >= money.RemainingBalance
	return d
}

// AvailableActions returns the actions the state machine permits from the
// booking's current status, for the caller to enable or disable controls.
// Temporal and payment guards still apply when an action is submitted.
func (v *Validator) AvailableActions(b Booking) []Action {
	return b.Status.Actions()
}

func amountOrZero(a *float64) float64 {
	if a == nil {
		return 0
	}
	return *a
}

// Calendar-date comparisons. Bookings carry dates without a meaningful
// time component, so only the (year, month, day) tuple is compared.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func dateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
