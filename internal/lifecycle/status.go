package lifecycle

import "fmt"

// Status represents the current state of a booking in its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusReserved   Status = "reserved"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
	StatusRejected   Status = "rejected"
)

// Action is an operator request evaluated against a booking snapshot.
type Action string

const (
	ActionReserve       Action = "reserve"
	ActionCheckIn       Action = "check_in"
	ActionCheckOut      Action = "check_out"
	ActionCancel        Action = "cancel"
	ActionReject        Action = "reject"
	ActionMarkNoShow    Action = "mark_no_show"
	ActionRecordPayment Action = "record_payment"
)

// transitions defines the state machine. RecordPayment maps back onto the
// same status: money moves but the lifecycle does not.
var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionReserve: StatusReserved,
		ActionReject:  StatusRejected,
	},
	StatusReserved: {
		ActionCheckIn:       StatusCheckedIn,
		ActionCancel:        StatusCancelled,
		ActionMarkNoShow:    StatusNoShow,
		ActionRecordPayment: StatusReserved,
	},
	StatusCheckedIn: {
		ActionCheckOut:      StatusCheckedOut,
		ActionRecordPayment: StatusCheckedIn,
	},
	StatusCheckedOut: {
		ActionRecordPayment: StatusCheckedOut,
	},
	StatusCancelled: {},
	StatusNoShow:    {},
	StatusRejected:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s Status) IsValid() bool {
	_, exists := transitions[s]
	return exists
}

// CanApply returns true if the action is legal from this status,
// before any payment or temporal guards are evaluated.
func (s Status) CanApply(a Action) bool {
	allowed, exists := transitions[s]
	if !exists {
		return false
	}
	_, ok := allowed[a]
	return ok
}

// NextStatus returns the status the action leads to. The second return
// value is false when the action is not legal from this status.
func (s Status) NextStatus(a Action) (Status, bool) {
	allowed, exists := transitions[s]
	if !exists {
		return "", false
	}
	next, ok := allowed[a]
	return next, ok
}

// IsTerminal returns true if no further transitions are possible.
// Self-transitions such as RecordPayment do not count: they change
// money, not lifecycle position.
func (s Status) IsTerminal() bool {
	for _, next := range transitions[s] {
		if next != s {
			return false
		}
	}
	return true
}

// Actions lists the actions the state machine permits from this status.
// Guards may still reject each of them for a concrete booking.
func (s Status) Actions() []Action {
	allowed := transitions[s]
	out := make([]Action, 0, len(allowed))
	for _, a := range []Action{
		ActionReserve, ActionCheckIn, ActionCheckOut, ActionCancel,
		ActionReject, ActionMarkNoShow, ActionRecordPayment,
	} {
		if _, ok := allowed[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a string to a Status, returning an error if invalid.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// ParseAction converts a string to an Action, returning an error if invalid.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionReserve, ActionCheckIn, ActionCheckOut, ActionCancel,
		ActionReject, ActionMarkNoShow, ActionRecordPayment:
		return Action(s), nil
	default:
		return "", fmt.Errorf("invalid booking action: %s", s)
	}
}
