package reservation

import (
	"slices"

	"booking-gateway/internal/domain/user"
)

// Presumed transition table. The upstream API enforces the real one; the gateway only uses
// this to avoid offering actions that would be rejected.
var transitionTable = map[Status]map[user.Role][]Action{
	StatusPending: {
		user.RoleBusiness: {ActionConfirm, ActionCancel},
		user.RoleCustomer: {ActionCancel, ActionReschedule},
	},
	StatusConfirmed: {
		user.RoleBusiness: {ActionNoShow, ActionComplete},
	},
}

// Customers can never cancel or reschedule once a reservation reached one of these.
var customerLockedStatuses = []Status{StatusNoShow, StatusConfirmed, StatusCanceled}

func OfferedActions(status Status, role user.Role) []Action {
	actions := transitionTable[status][role]
	offered := make([]Action, 0, len(actions))
	for _, a := range actions {
		if role == user.RoleCustomer && isCustomerLocked(status) &&
			(a == ActionCancel || a == ActionReschedule) {
			continue
		}
		offered = append(offered, a)
	}
	return offered
}

func IsOffered(status Status, role user.Role, action Action) bool {
	return slices.Contains(OfferedActions(status, role), action)
}

func isCustomerLocked(status Status) bool {
	return slices.Contains(customerLockedStatuses, status)
}
