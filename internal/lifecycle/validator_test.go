package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestValidateReserve(t *testing.T) {
	v := NewValidator()
	b := Booking{Status: StatusPending, TotalPrice: 2000}
	now := at(2024, time.June, 1, 10, 0)

	tests := []struct {
		name     string
		amount   *float64
		wantOK   bool
		wantCode ReasonCode
	}{
		{"half of total authorizes", f(1000), true, ""},
		{"full total authorizes", f(2000), true, ""},
		{"below half rejected", f(900), false, ReasonAmountTooLow},
		{"just above total rejected", f(2000.01), false, ReasonAmountTooHigh},
		{"missing amount rejected", nil, false, ReasonAmountEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := v.Validate(b, TransitionRequest{Action: ActionReserve, Amount: tt.amount, Now: now})
			assert.Equal(t, tt.wantOK, d.Authorized)
			if tt.wantOK {
				assert.Equal(t, *tt.amount, d.Amount)
				assert.Equal(t, StatusReserved, d.NextStatus)
			} else {
				assert.Equal(t, tt.wantCode, d.Code)
			}
		})
	}
}

func TestValidateReserveIgnoresDiscountOverride(t *testing.T) {
	// No discount applies before the reservation is confirmed, so the
	// band is computed against the original quoted total.
	v := NewValidator()
	b := Booking{Status: StatusPending, TotalPrice: 2000, DiscountedTotal: f(1000)}

	d := v.Validate(b, TransitionRequest{Action: ActionReserve, Amount: f(600), Now: at(2024, time.June, 1, 10, 0)})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonAmountTooLow, d.Code)
}

func TestValidateReserveMonotonicity(t *testing.T) {
	v := NewValidator()
	b := Booking{Status: StatusPending, TotalPrice: 2000}
	now := at(2024, time.June, 1, 10, 0)

	var prevAuthorized bool
	for _, amount := range []float64{100, 500, 999.99, 1000, 1500, 2000} {
		d := v.Validate(b, TransitionRequest{Action: ActionReserve, Amount: f(amount), Now: now})
		if prevAuthorized {
			assert.True(t, d.Authorized, "authorization must not flip back off below the total (amount %.2f)", amount)
		}
		prevAuthorized = d.Authorized
	}
}

func TestValidateCheckIn(t *testing.T) {
	v := NewValidator()
	checkIn := date(2024, time.June, 10)

	paid := Booking{Status: StatusReserved, CheckInDate: checkIn, TotalPrice: 2000, AmountPaid: 2000}
	partial := Booking{Status: StatusReserved, CheckInDate: checkIn, TotalPrice: 2000, AmountPaid: 1500}

	tests := []struct {
		name     string
		booking  Booking
		now      time.Time
		amount   *float64
		wantOK   bool
		wantCode ReasonCode
	}{
		{"day before", paid, at(2024, time.June, 9, 15, 0), nil, false, ReasonNotYetCheckInDate},
		{"13:59 on the day", paid, at(2024, time.June, 10, 13, 59), nil, false, ReasonTooEarly},
		{"14:00 exactly, fully paid", paid, at(2024, time.June, 10, 14, 0), nil, true, ""},
		{"evening, fully paid", paid, at(2024, time.June, 10, 20, 30), nil, true, ""},
		{"outstanding balance, no amount", partial, at(2024, time.June, 10, 14, 0), nil, false, ReasonPaymentRequired},
		{"outstanding balance, wrong amount", partial, at(2024, time.June, 10, 14, 0), f(400), false, ReasonPaymentRequired},
		{"paying exactly the balance", partial, at(2024, time.June, 10, 14, 0), f(500), true, ""},
		{"day after", paid, at(2024, time.June, 11, 9, 0), nil, false, ReasonCheckInDateExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := v.Validate(tt.booking, TransitionRequest{Action: ActionCheckIn, Amount: tt.amount, Now: tt.now})
			if tt.wantCode != "" {
				require.False(t, d.Authorized)
				assert.Equal(t, tt.wantCode, d.Code)
				return
			}
			require.True(t, d.Authorized)
			assert.Equal(t, StatusCheckedIn, d.NextStatus)
			if tt.amount != nil {
				assert.Equal(t, *tt.amount, d.Amount)
			}
		})
	}
}

func TestValidateCheckInCompletesPayment(t *testing.T) {
	// Both authorize paths leave the booking fully paid, so the caller
	// always gets the completion flag.
	v := NewValidator()
	checkIn := date(2024, time.June, 10)
	now := at(2024, time.June, 10, 15, 0)

	paid := Booking{Status: StatusReserved, CheckInDate: checkIn, TotalPrice: 2000, AmountPaid: 2000}
	d := v.Validate(paid, TransitionRequest{Action: ActionCheckIn, Now: now})
	require.True(t, d.Authorized)
	assert.True(t, d.WillCompletePayment)

	partial := Booking{Status: StatusReserved, CheckInDate: checkIn, TotalPrice: 2000, AmountPaid: 1500}
	d = v.Validate(partial, TransitionRequest{Action: ActionCheckIn, Amount: f(500), Now: now})
	require.True(t, d.Authorized)
	assert.True(t, d.WillCompletePayment)
}

func TestValidateCheckInRejectsNegativeAmount(t *testing.T) {
	// A fully paid booking accepts an optional extra amount at check-in,
	// but collected money never decreases.
	v := NewValidator()
	b := Booking{Status: StatusReserved, CheckInDate: date(2024, time.June, 10), TotalPrice: 2000, AmountPaid: 2000}

	d := v.Validate(b, TransitionRequest{Action: ActionCheckIn, Amount: f(-300), Now: at(2024, time.June, 10, 15, 0)})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonAmountZero, d.Code)
}

func TestValidateCheckInGuardPrecedence(t *testing.T) {
	// Before the check-in date, the temporal guard wins even when the
	// booking is unpaid: the first failing guard determines the message.
	v := NewValidator()
	b := Booking{Status: StatusReserved, CheckInDate: date(2024, time.June, 10), TotalPrice: 2000}

	d := v.Validate(b, TransitionRequest{Action: ActionCheckIn, Now: at(2024, time.June, 9, 9, 0)})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonNotYetCheckInDate, d.Code)

	d = v.Validate(b, TransitionRequest{Action: ActionCheckIn, Now: at(2024, time.June, 10, 8, 0)})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonTooEarly, d.Code)
}

func TestValidateMarkNoShow(t *testing.T) {
	v := NewValidator()
	b := Booking{Status: StatusReserved, CheckInDate: date(2024, time.June, 10), TotalPrice: 2000}

	d := v.Validate(b, TransitionRequest{Action: ActionMarkNoShow, Now: at(2024, time.June, 11, 9, 0)})
	require.True(t, d.Authorized)
	assert.Equal(t, StatusNoShow, d.NextStatus)

	// Same moment: check-in reports the expired date instead.
	d = v.Validate(b, TransitionRequest{Action: ActionCheckIn, Now: at(2024, time.June, 11, 9, 0)})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonCheckInDateExpired, d.Code)

	// On the check-in day itself the guest may still arrive.
	d = v.Validate(b, TransitionRequest{Action: ActionMarkNoShow, Now: at(2024, time.June, 10, 23, 0)})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonNotYetCheckInDate, d.Code)
}

func TestValidateMarkNoShowAfterPartialPayment(t *testing.T) {
	// Collected money does not block a no-show; the gate is purely temporal.
	v := NewValidator()
	b := Booking{Status: StatusReserved, CheckInDate: date(2024, time.June, 10), TotalPrice: 2000, AmountPaid: 1000}

	d := v.Validate(b, TransitionRequest{Action: ActionMarkNoShow, Now: at(2024, time.June, 12, 9, 0)})
	assert.True(t, d.Authorized)
}

func TestValidateRecordPayment(t *testing.T) {
	v := NewValidator()
	b := Booking{Status: StatusCheckedIn, TotalPrice: 2000, AmountPaid: 1500}
	now := at(2024, time.June, 11, 12, 0)

	tests := []struct {
		name         string
		amount       *float64
		wantOK       bool
		wantCode     ReasonCode
		wantComplete bool
	}{
		{"missing amount", nil, false, ReasonAmountEmpty, false},
		{"above the balance", f(600), false, ReasonAmountExceedsBalance, false},
		{"zero with balance outstanding", f(0), false, ReasonAmountZero, false},
		{"negative amount", f(-100), false, ReasonAmountZero, false},
		{"partial payment", f(200), true, "", false},
		{"exactly the balance", f(500), true, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := v.Validate(b, TransitionRequest{Action: ActionRecordPayment, Amount: tt.amount, Now: now})
			assert.Equal(t, tt.wantOK, d.Authorized)
			if tt.wantOK {
				assert.Equal(t, b.Status, d.NextStatus, "recording a payment must not move the lifecycle")
				assert.Equal(t, tt.wantComplete, d.WillCompletePayment)
			} else {
				assert.Equal(t, tt.wantCode, d.Code)
			}
		})
	}
}

func TestValidateRecordPaymentUsesEffectiveTotal(t *testing.T) {
	// The balance is computed against whichever total is effective at
	// call time, so a discount override shrinks what can be collected.
	v := NewValidator()
	b := Booking{Status: StatusReserved, TotalPrice: 2000, DiscountedTotal: f(1500), AmountPaid: 1000}

	d := v.Validate(b, TransitionRequest{Action: ActionRecordPayment, Amount: f(600), Now: at(2024, time.June, 1, 10, 0)})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonAmountExceedsBalance, d.Code)

	d = v.Validate(b, TransitionRequest{Action: ActionRecordPayment, Amount: f(500), Now: at(2024, time.June, 1, 10, 0)})
	require.True(t, d.Authorized)
	assert.True(t, d.WillCompletePayment)
}

func TestValidateCancelAndReject(t *testing.T) {
	v := NewValidator()
	now := at(2024, time.June, 1, 10, 0)

	reserved := Booking{Status: StatusReserved, TotalPrice: 2000}
	pending := Booking{Status: StatusPending, TotalPrice: 2000}

	d := v.Validate(reserved, TransitionRequest{Action: ActionCancel, Reason: "guest request", Now: now})
	require.True(t, d.Authorized)
	assert.Equal(t, StatusCancelled, d.NextStatus)

	d = v.Validate(reserved, TransitionRequest{Action: ActionCancel, Reason: "   ", Now: now})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonReasonRequired, d.Code)

	d = v.Validate(pending, TransitionRequest{Action: ActionReject, Reason: "no availability", Now: now})
	require.True(t, d.Authorized)
	assert.Equal(t, StatusRejected, d.NextStatus)

	d = v.Validate(pending, TransitionRequest{Action: ActionReject, Now: now})
	require.False(t, d.Authorized)
	assert.Equal(t, ReasonReasonRequired, d.Code)
}

func TestValidateCheckOut(t *testing.T) {
	v := NewValidator()
	// Unconditional once checked in, even with money outstanding.
	b := Booking{Status: StatusCheckedIn, TotalPrice: 2000, AmountPaid: 500}

	d := v.Validate(b, TransitionRequest{Action: ActionCheckOut, Now: at(2024, time.June, 12, 11, 0)})
	require.True(t, d.Authorized)
	assert.Equal(t, StatusCheckedOut, d.NextStatus)
}

func TestValidateInvalidTransitions(t *testing.T) {
	v := NewValidator()
	now := at(2024, time.June, 1, 10, 0)

	tests := []struct {
		status Status
		action Action
	}{
		{StatusPending, ActionCheckIn},
		{StatusPending, ActionCancel},
		{StatusReserved, ActionReserve},
		{StatusCheckedOut, ActionCheckIn},
		{StatusCancelled, ActionRecordPayment},
		{StatusNoShow, ActionCheckOut},
		{StatusRejected, ActionReserve},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"_"+string(tt.action), func(t *testing.T) {
			d := v.Validate(Booking{Status: tt.status, TotalPrice: 2000}, TransitionRequest{Action: tt.action, Reason: "r", Amount: f(2000), Now: now})
			require.False(t, d.Authorized)
			assert.Equal(t, ReasonInvalidTransition, d.Code)
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	v := NewValidator()
	b := Booking{Status: StatusReserved, CheckInDate: date(2024, time.June, 10), TotalPrice: 2000, AmountPaid: 1500}
	req := TransitionRequest{Action: ActionCheckIn, Amount: f(500), Now: at(2024, time.June, 10, 14, 0)}

	first := v.Validate(b, req)
	second := v.Validate(b, req)
	assert.Equal(t, first, second)
}

func TestValidateScenarios(t *testing.T) {
	v := NewValidator()

	t.Run("pending booking reserved with exactly half", func(t *testing.T) {
		b := Booking{Status: StatusPending, TotalPrice: 2000}
		d := v.Validate(b, TransitionRequest{Action: ActionReserve, Amount: f(1000), Now: at(2024, time.June, 1, 10, 0)})
		require.True(t, d.Authorized)
		assert.Equal(t, 1000.0, d.Amount)
	})

	t.Run("pending booking with 900 of 2000 rejected low", func(t *testing.T) {
		b := Booking{Status: StatusPending, TotalPrice: 2000}
		d := v.Validate(b, TransitionRequest{Action: ActionReserve, Amount: f(900), Now: at(2024, time.June, 1, 10, 0)})
		require.False(t, d.Authorized)
		assert.Equal(t, ReasonAmountTooLow, d.Code)
	})

	t.Run("fully paid booking one minute early", func(t *testing.T) {
		b := Booking{Status: StatusReserved, CheckInDate: date(2024, time.June, 10), TotalPrice: 2000, AmountPaid: 2000}
		d := v.Validate(b, TransitionRequest{Action: ActionCheckIn, Now: at(2024, time.June, 10, 13, 59)})
		require.False(t, d.Authorized)
		assert.Equal(t, ReasonTooEarly, d.Code)
	})

	t.Run("settling 500 balance at the cutoff", func(t *testing.T) {
		b := Booking{Status: StatusReserved, CheckInDate: date(2024, time.June, 10), TotalPrice: 2000, AmountPaid: 1500}
		d := v.Validate(b, TransitionRequest{Action: ActionCheckIn, Amount: f(500), Now: at(2024, time.June, 10, 14, 0)})
		require.True(t, d.Authorized)
		assert.Equal(t, 500.0, d.Amount)
	})
}
