package reservation

import "strings"

type Status string

const (
	StatusPending     Status = "Pending"
	StatusConfirmed   Status = "Confirmed"
	StatusInProcess   Status = "In Process"
	StatusCompleted   Status = "Completed"
	StatusCanceled    Status = "Canceled"
	StatusNoShow      Status = "No Show"
	StatusRescheduled Status = "Rescheduled"
)

var allStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusInProcess,
	StatusCompleted,
	StatusCanceled,
	StatusNoShow,
	StatusRescheduled,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	for _, st := range allStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// NewStatus accepts the wire value case-insensitively.
func NewStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range allStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

type Action string

const (
	ActionConfirm    Action = "confirm"
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
	ActionNoShow     Action = "no_show"
	ActionComplete   Action = "complete"
)

var actionTargets = map[Action]Status{
	ActionConfirm:    StatusConfirmed,
	ActionCancel:     StatusCanceled,
	ActionReschedule: StatusRescheduled,
	ActionNoShow:     StatusNoShow,
	ActionComplete:   StatusCompleted,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	_, ok := actionTargets[a]
	return ok
}

func NewAction(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", ErrInvalidAction
	}
	return a, nil
}

// TargetStatus is the status carried by the update request issued for the action.
func (a Action) TargetStatus() Status {
	return actionTargets[a]
}

// RequiresSlot reports whether the update request must also carry new start/end times.
func (a Action) RequiresSlot() bool {
	return a == ActionReschedule
}
