package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from   Status
		action Action
		to     Status
		want   bool
	}{
		{StatusPending, ActionReserve, StatusReserved, true},
		{StatusPending, ActionReject, StatusRejected, true},
		{StatusPending, ActionCheckIn, "", false},
		{StatusPending, ActionCancel, "", false},
		{StatusReserved, ActionCheckIn, StatusCheckedIn, true},
		{StatusReserved, ActionCancel, StatusCancelled, true},
		{StatusReserved, ActionMarkNoShow, StatusNoShow, true},
		{StatusReserved, ActionRecordPayment, StatusReserved, true},
		{StatusReserved, ActionReserve, "", false},
		{StatusCheckedIn, ActionCheckOut, StatusCheckedOut, true},
		{StatusCheckedIn, ActionRecordPayment, StatusCheckedIn, true},
		{StatusCheckedIn, ActionCancel, "", false},
		{StatusCheckedOut, ActionRecordPayment, StatusCheckedOut, true},
		{StatusCheckedOut, ActionCheckIn, "", false},
		{StatusCancelled, ActionReserve, "", false},
		{StatusNoShow, ActionCheckIn, "", false},
		{StatusRejected, ActionReserve, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_"+string(tt.action), func(t *testing.T) {
			next, ok := tt.from.NextStatus(tt.action)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.to, next)
			}
			assert.Equal(t, tt.want, tt.from.CanApply(tt.action))
		})
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []Status{StatusCheckedOut, StatusCancelled, StatusNoShow, StatusRejected} {
		assert.True(t, s.IsTerminal(), "%s should be terminal", s)
	}
	for _, s := range []Status{StatusPending, StatusReserved, StatusCheckedIn} {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
	// CheckedOut is terminal for the lifecycle but still accepts payments.
	assert.True(t, StatusCheckedOut.CanApply(ActionRecordPayment))
}

func TestStatusActions(t *testing.T) {
	assert.ElementsMatch(t,
		[]Action{ActionReserve, ActionReject},
		StatusPending.Actions())
	assert.ElementsMatch(t,
		[]Action{ActionCheckIn, ActionCancel, ActionMarkNoShow, ActionRecordPayment},
		StatusReserved.Actions())
	assert.Empty(t, StatusCancelled.Actions())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("reserved")
	require.NoError(t, err)
	assert.Equal(t, StatusReserved, s)

	_, err = ParseStatus("confirmed")
	assert.Error(t, err)
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("check_in")
	require.NoError(t, err)
	assert.Equal(t, ActionCheckIn, a)

	_, err = ParseAction("checkin")
	assert.Error(t, err)
}
