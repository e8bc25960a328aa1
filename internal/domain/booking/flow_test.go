//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const zone = "America/Bogota"

var (
	now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
)

func services(ids ...int64) []reservation.Service {
	out := make([]reservation.Service, 0, len(ids))
	for _, id := range ids {
		out = append(out, builder.NewServiceBuilder().WithID(id).MustBuild())
	}
	return out
}

func start(t *testing.T, svcs []reservation.Service, rs *booking.Reschedule) *booking.Flow {
	t.Helper()
	f, err := booking.Start(uuid.New(), svcs, rs, zone, now)
	require.NoError(t, err)
	return f
}

// toConfirming drives a flow from the date step to a selected hour.
func toConfirming(t *testing.T, f *booking.Flow, hour string) *booking.Flow {
	t.Helper()
	f, req, err := f.PickDay(day)
	require.NoError(t, err)
	f, err = f.ApplyAvailability(req, []string{"09:00", "10:00", hour})
	require.NoError(t, err)
	f, err = f.PickHour(hour)
	require.NoError(t, err)
	return f
}

func TestStart(t *testing.T) {
	t.Parallel()

	t.Run("several services start at service selection", func(t *testing.T) {
		f := start(t, services(1, 2), nil)
		assert.Equal(t, booking.KindSelectingService, f.State().Kind())
		cur, ok := f.CurrentService()
		require.True(t, ok)
		assert.Equal(t, int64(1), cur.ID())
	})

	t.Run("no services start at service selection", func(t *testing.T) {
		f := start(t, nil, nil)
		assert.Equal(t, booking.KindSelectingService, f.State().Kind())
		_, err := f.PickService(1)
		assert.ErrorIs(t, err, booking.ErrUnknownService)
	})

	t.Run("single service skips to date", func(t *testing.T) {
		f := start(t, services(5), nil)
		assert.Equal(t, booking.KindSelectingDate, f.State().Kind())
	})

	t.Run("reschedule skips to date", func(t *testing.T) {
		rs := &booking.Reschedule{ReservationID: 42, Status: reservation.StatusPending}
		f := start(t, services(5), rs)
		assert.Equal(t, booking.KindSelectingDate, f.State().Kind())
	})

	t.Run("reschedule needs exactly one service", func(t *testing.T) {
		rs := &booking.Reschedule{ReservationID: 42}
		_, err := booking.Start(uuid.New(), services(1, 2), rs, zone, now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("no services", func(t *testing.T) {
		_, err := booking.Start(uuid.New(), nil, nil, zone, now)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := booking.Start(uuid.New(), services(1), nil, "Mars/Olympus", now)
		assert.ErrorIs(t, err, booking.ErrInvalidTimezone)
	})
}

func TestServiceSelection(t *testing.T) {
	t.Parallel()

	f := start(t, services(1, 2, 3), nil)

	t.Run("pick moves to date", func(t *testing.T) {
		next, err := f.PickService(2)
		require.NoError(t, err)
		assert.Equal(t, booking.KindSelectingDate, next.State().Kind())
		cur, _ := next.CurrentService()
		assert.Equal(t, int64(2), cur.ID())
		assert.Equal(t, booking.KindSelectingService, f.State().Kind(), "receiver must not change")
	})

	t.Run("carousel wraps both ways", func(t *testing.T) {
		prev, err := f.PreviousService()
		require.NoError(t, err)
		cur, _ := prev.CurrentService()
		assert.Equal(t, int64(3), cur.ID())

		next, err := prev.NextService()
		require.NoError(t, err)
		cur, _ = next.CurrentService()
		assert.Equal(t, int64(1), cur.ID())
		assert.Equal(t, booking.KindSelectingService, next.State().Kind())
	})

	t.Run("carousel disabled for a single service", func(t *testing.T) {
		_, err := start(t, services(1), nil).NextService()
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("cannot pick after hours were fetched", func(t *testing.T) {
		next, err := f.PickService(1)
		require.NoError(t, err)
		next, req, err := next.PickDay(day)
		require.NoError(t, err)
		next, err = next.ApplyAvailability(req, []string{"09:00"})
		require.NoError(t, err)

		_, err = next.PickService(2)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestDayAndHour(t *testing.T) {
	t.Parallel()

	f := start(t, services(1), nil)

	t.Run("pick day outside date step", func(t *testing.T) {
		_, _, err := start(t, services(1, 2), nil).PickDay(day)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("availability moves to time step", func(t *testing.T) {
		next, req, err := f.PickDay(day.Add(15 * time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), req.ServiceID)
		assert.Equal(t, day, req.Day)

		next, err = next.ApplyAvailability(req, []string{"09:00", "10:00"})
		require.NoError(t, err)
		st, ok := next.State().(booking.SelectingTime)
		require.True(t, ok)
		assert.Equal(t, day, st.Day)
		assert.Equal(t, []string{"09:00", "10:00"}, st.Hours)
	})

	t.Run("hour toggle", func(t *testing.T) {
		c := toConfirming(t, f, "11:00")
		st, ok := c.State().(booking.Confirming)
		require.True(t, ok)
		assert.Equal(t, "11:00", st.Hour)

		switched, err := c.PickHour("09:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00", switched.State().(booking.Confirming).Hour)

		back, err := switched.PickHour("09:00")
		require.NoError(t, err)
		assert.Equal(t, booking.KindSelectingTime, back.State().Kind())
	})

	t.Run("hour not offered", func(t *testing.T) {
		c := toConfirming(t, f, "11:00")
		_, err := c.PickHour("18:00")
		assert.ErrorIs(t, err, booking.ErrHourNotOffered)
	})

	t.Run("change day discards selection", func(t *testing.T) {
		c := toConfirming(t, f, "11:00")
		next, err := c.ChangeDay()
		require.NoError(t, err)
		assert.Equal(t, booking.KindSelectingDate, next.State().Kind())

		_, err = next.ChangeDay()
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestGenerationGuard(t *testing.T) {
	t.Parallel()

	f := start(t, services(1, 2), nil)
	f, err := f.PickService(1)
	require.NoError(t, err)
	pending, req, err := f.PickDay(day)
	require.NoError(t, err)

	t.Run("result after cancel is stale", func(t *testing.T) {
		canceled, err := pending.Cancel()
		require.NoError(t, err)
		assert.Equal(t, pending.Generation()+1, canceled.Generation())

		_, err = canceled.ApplyAvailability(req, []string{"09:00"})
		assert.ErrorIs(t, err, booking.ErrStaleResult)
	})

	t.Run("result for another service is stale", func(t *testing.T) {
		moved, err := pending.NextService()
		require.NoError(t, err)
		_, err = moved.ApplyAvailability(req, []string{"09:00"})
		assert.ErrorIs(t, err, booking.ErrStaleResult)
	})

	t.Run("second result is stale", func(t *testing.T) {
		applied, err := pending.ApplyAvailability(req, []string{"09:00"})
		require.NoError(t, err)
		_, err = applied.ApplyAvailability(req, []string{"10:00"})
		assert.ErrorIs(t, err, booking.ErrStaleResult)
	})
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("double submit is rejected", func(t *testing.T) {
		c := toConfirming(t, start(t, services(1), nil), "11:00")
		inFlight, sub, err := c.BeginSubmit()
		require.NoError(t, err)
		assert.Equal(t, "11:00", sub.Hour)
		assert.False(t, sub.IsReschedule())

		_, _, err = inFlight.BeginSubmit()
		assert.ErrorIs(t, err, booking.ErrSubmitInFlight)

		_, err = inFlight.PickHour("09:00")
		assert.ErrorIs(t, err, booking.ErrSubmitInFlight)
		_, err = inFlight.ChangeDay()
		assert.ErrorIs(t, err, booking.ErrSubmitInFlight)
	})

	t.Run("cancel waits for the outstanding submit", func(t *testing.T) {
		picked, err := start(t, services(1, 2), nil).PickService(1)
		require.NoError(t, err)
		inFlight, _, err := toConfirming(t, picked, "11:00").BeginSubmit()
		require.NoError(t, err)

		_, err = inFlight.Cancel()
		require.ErrorIs(t, err, booking.ErrSubmitInFlight)

		done, err := inFlight.CompleteSubmit()
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, done.Scheduled())
		assert.Equal(t, inFlight.Generation(), done.Generation())
	})

	t.Run("failure keeps selection", func(t *testing.T) {
		c := toConfirming(t, start(t, services(1), nil), "11:00")
		inFlight, _, err := c.BeginSubmit()
		require.NoError(t, err)

		failed, err := inFlight.FailSubmit()
		require.NoError(t, err)
		st := failed.State().(booking.Confirming)
		assert.False(t, st.Submitting)
		assert.Equal(t, "11:00", st.Hour)
		assert.Equal(t, day, st.Day)

		_, _, err = failed.BeginSubmit()
		assert.NoError(t, err)
	})

	t.Run("multi service advances to next unscheduled", func(t *testing.T) {
		f := start(t, services(1, 2, 3), nil)
		f, err := f.PickService(2)
		require.NoError(t, err)
		f = toConfirming(t, f, "11:00")
		f, _, err = f.BeginSubmit()
		require.NoError(t, err)

		f, err = f.CompleteSubmit()
		require.NoError(t, err)
		assert.Equal(t, booking.KindSelectingDate, f.State().Kind())
		assert.Equal(t, []int64{2}, f.Scheduled())
		cur, _ := f.CurrentService()
		assert.Equal(t, int64(3), cur.ID())

		_, err = f.PickService(2)
		assert.ErrorIs(t, err, booking.ErrServiceAlreadyScheduled)

		for range 2 {
			f = toConfirming(t, f, "11:00")
			f, _, err = f.BeginSubmit()
			require.NoError(t, err)
			f, err = f.CompleteSubmit()
			require.NoError(t, err)
		}
		assert.True(t, f.IsFinished())
		assert.ElementsMatch(t, []int64{1, 2, 3}, f.Scheduled())
	})

	t.Run("reschedule ends after one submit", func(t *testing.T) {
		rs := &booking.Reschedule{ReservationID: 42, Status: reservation.StatusPending, Page: 2}
		f := toConfirming(t, start(t, services(1), rs), "11:00")

		f, sub, err := f.BeginSubmit()
		require.NoError(t, err)
		assert.True(t, sub.IsReschedule())
		assert.Equal(t, int64(42), sub.Reschedule.ReservationID)

		f, err = f.CompleteSubmit()
		require.NoError(t, err)
		assert.True(t, f.IsFinished())

		_, err = f.Cancel()
		assert.ErrorIs(t, err, booking.ErrFlowFinished)
		_, _, err = f.PickDay(day)
		assert.ErrorIs(t, err, booking.ErrFlowFinished)
	})

	t.Run("submission slot uses flow zone", func(t *testing.T) {
		f := start(t, services(1), nil)
		f = toConfirming(t, f, "11:00")
		_, sub, err := f.BeginSubmit()
		require.NoError(t, err)

		slot, err := sub.Slot(reservation.NewSlotFactory(f.Location()))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC), slot.Start())
		assert.Equal(t, 90*time.Minute, slot.Duration())
	})

	t.Run("complete without begin", func(t *testing.T) {
		c := toConfirming(t, start(t, services(1), nil), "11:00")
		_, err := c.CompleteSubmit()
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
		_, err = c.FailSubmit()
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	t.Parallel()

	f := start(t, services(1, 2), nil)
	f, err := f.PickService(2)
	require.NoError(t, err)
	f = toConfirming(t, f, "11:00")

	reset, err := f.Cancel()
	require.NoError(t, err)
	assert.Equal(t, booking.KindSelectingService, reset.State().Kind())
	assert.Equal(t, f.Generation()+1, reset.Generation())

	pinned := toConfirming(t, start(t, services(1), nil), "11:00")
	reset, err = pinned.Cancel()
	require.NoError(t, err)
	assert.Equal(t, booking.KindSelectingDate, reset.State().Kind())
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	rs := &booking.Reschedule{ReservationID: 9, Status: reservation.StatusPending, Page: 1, PageSize: 5}
	f := toConfirming(t, start(t, services(4), rs), "11:00")
	f, _, err := f.BeginSubmit()
	require.NoError(t, err)

	restored, err := booking.Reconstruct(f.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, f.State(), restored.State())
	assert.Equal(t, f.ID(), restored.ID())
	assert.Equal(t, f.Reschedule(), restored.Reschedule())

	_, _, err = restored.BeginSubmit()
	assert.ErrorIs(t, err, booking.ErrSubmitInFlight)

	bad := f.Snapshot()
	bad.State = booking.StateSnapshot{Kind: booking.KindConfirming}
	_, err = booking.Reconstruct(bad)
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}
