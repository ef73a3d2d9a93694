package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		booking Booking
		want    MoneyState
	}{
		{
			name:    "no payments yet",
			booking: Booking{TotalPrice: 2000},
			want:    MoneyState{EffectiveTotal: 2000, AmountCollected: 0, RemainingBalance: 2000, FullyPaid: false},
		},
		{
			name:    "discount override supersedes total price",
			booking: Booking{TotalPrice: 2000, DiscountedTotal: f(1500)},
			want:    MoneyState{EffectiveTotal: 1500, AmountCollected: 0, RemainingBalance: 1500, FullyPaid: false},
		},
		{
			name:    "negative discount override is ignored",
			booking: Booking{TotalPrice: 2000, DiscountedTotal: f(-1)},
			want:    MoneyState{EffectiveTotal: 2000, AmountCollected: 0, RemainingBalance: 2000, FullyPaid: false},
		},
		{
			name:    "down payment stands in while paid amount is unreconciled",
			booking: Booking{TotalPrice: 2000, DownPayment: f(1000), AmountPaid: 0},
			want:    MoneyState{EffectiveTotal: 2000, AmountCollected: 1000, RemainingBalance: 1000, FullyPaid: false},
		},
		{
			name:    "reconciled paid amount takes over from the deposit",
			booking: Booking{TotalPrice: 2000, DownPayment: f(1000), AmountPaid: 1500},
			want:    MoneyState{EffectiveTotal: 2000, AmountCollected: 1500, RemainingBalance: 500, FullyPaid: false},
		},
		{
			name:    "exactly paid",
			booking: Booking{TotalPrice: 2000, AmountPaid: 2000},
			want:    MoneyState{EffectiveTotal: 2000, AmountCollected: 2000, RemainingBalance: 0, FullyPaid: true},
		},
		{
			name:    "overpayment reads as fully paid, never a negative balance",
			booking: Booking{TotalPrice: 2000, AmountPaid: 2600},
			want:    MoneyState{EffectiveTotal: 2000, AmountCollected: 2600, RemainingBalance: 0, FullyPaid: true},
		},
		{
			name:    "free booking is trivially fully paid",
			booking: Booking{TotalPrice: 0},
			want:    MoneyState{EffectiveTotal: 0, AmountCollected: 0, RemainingBalance: 0, FullyPaid: true},
		},
		{
			name:    "garbled negative fields clamp to zero",
			booking: Booking{TotalPrice: -50, AmountPaid: -20, DownPayment: f(-10)},
			want:    MoneyState{EffectiveTotal: 0, AmountCollected: 0, RemainingBalance: 0, FullyPaid: true},
		},
		{
			name:    "paid against the discounted total",
			booking: Booking{TotalPrice: 2000, DiscountedTotal: f(1500), AmountPaid: 1500},
			want:    MoneyState{EffectiveTotal: 1500, AmountCollected: 1500, RemainingBalance: 0, FullyPaid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.booking)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got.RemainingBalance, 0.0)
		})
	}
}
