//go:build unit

package reservation_test

import (
	"testing"

	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/domain/user"
	"booking-gateway/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferedActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status reservation.Status
		role   user.Role
		want   []reservation.Action
	}{
		{reservation.StatusPending, user.RoleBusiness, []reservation.Action{reservation.ActionConfirm, reservation.ActionCancel}},
		{reservation.StatusPending, user.RoleCustomer, []reservation.Action{reservation.ActionCancel, reservation.ActionReschedule}},
		{reservation.StatusConfirmed, user.RoleBusiness, []reservation.Action{reservation.ActionNoShow, reservation.ActionComplete}},
		{reservation.StatusConfirmed, user.RoleCustomer, nil},
		{reservation.StatusInProcess, user.RoleBusiness, nil},
		{reservation.StatusInProcess, user.RoleCustomer, nil},
		{reservation.StatusCompleted, user.RoleBusiness, nil},
		{reservation.StatusCanceled, user.RoleCustomer, nil},
		{reservation.StatusNoShow, user.RoleCustomer, nil},
		{reservation.StatusRescheduled, user.RoleBusiness, nil},
		{reservation.StatusRescheduled, user.RoleCustomer, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.status)+"/"+string(tt.role), func(t *testing.T) {
			t.Parallel()
			got := reservation.OfferedActions(tt.status, tt.role)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("OfferedActions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCustomerNeverCancelsLockedReservations(t *testing.T) {
	t.Parallel()

	for _, s := range []reservation.Status{reservation.StatusNoShow, reservation.StatusConfirmed, reservation.StatusCanceled} {
		assert.False(t, reservation.IsOffered(s, user.RoleCustomer, reservation.ActionCancel), s)
		assert.False(t, reservation.IsOffered(s, user.RoleCustomer, reservation.ActionReschedule), s)
	}
}

func TestAction(t *testing.T) {
	t.Parallel()

	t.Run("target statuses", func(t *testing.T) {
		want := map[reservation.Action]reservation.Status{
			reservation.ActionConfirm:    reservation.StatusConfirmed,
			reservation.ActionCancel:     reservation.StatusCanceled,
			reservation.ActionNoShow:     reservation.StatusNoShow,
			reservation.ActionComplete:   reservation.StatusCompleted,
			reservation.ActionReschedule: reservation.StatusRescheduled,
		}
		for a, s := range want {
			assert.Equal(t, s, a.TargetStatus(), a)
		}
	})

	t.Run("only reschedule requires slot", func(t *testing.T) {
		assert.True(t, reservation.ActionReschedule.RequiresSlot())
		assert.False(t, reservation.ActionConfirm.RequiresSlot())
	})

	t.Run("parse", func(t *testing.T) {
		a, err := reservation.NewAction(" No_Show ")
		require.NoError(t, err)
		assert.Equal(t, reservation.ActionNoShow, a)

		_, err = reservation.NewAction("delete")
		assert.ErrorIs(t, err, reservation.ErrInvalidAction)
	})
}

func TestNewStatus(t *testing.T) {
	t.Parallel()

	s, err := reservation.NewStatus("in process")
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusInProcess, s)

	_, err = reservation.NewStatus("Archived")
	assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestReservation_OfferedActions(t *testing.T) {
	t.Parallel()

	res := builder.NewReservationBuilder().WithStatus(reservation.StatusPending).MustBuild()

	assert.True(t, res.Offers(user.RoleBusiness, reservation.ActionConfirm))
	assert.False(t, res.Offers(user.RoleCustomer, reservation.ActionConfirm))
	assert.Equal(t, []reservation.Action{reservation.ActionCancel, reservation.ActionReschedule}, res.OfferedActions(user.RoleCustomer))
}
