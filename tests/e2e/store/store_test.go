//go:build e2e

package store_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/domain/search"
	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra"
	"booking-gateway/internal/infra/store"
	"booking-gateway/internal/pkg/sealer"
	"booking-gateway/tests/common/builder"
	"booking-gateway/tests/common/dbtest"
	"booking-gateway/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2030, 3, 9, 15, 0, 0, 0, time.UTC)

type storeSuite struct {
	e2e.SharedSuite
	sessions *store.SessionStore
	flows    *store.FlowStore
	searches *store.SearchStateStore
}

func TestStoreSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(storeSuite))
}

func (s *storeSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()

	logger := slog.New(slog.DiscardHandler)
	sl, err := sealer.New(s.Config.Session.SealingKey)
	s.Require().NoError(err)
	s.sessions = store.NewSessionStore(s.DB, sl, logger)
	s.flows = store.NewFlowStore(s.DB, time.Hour, logger)
	s.searches = store.NewSearchStateStore(s.DB, logger)
}

func (s *storeSuite) newSession(now time.Time) *session.Session {
	sess, err := session.New("access", "refresh", 7, user.RoleCustomer, now, time.Hour)
	s.Require().NoError(err)
	s.Require().NoError(s.sessions.Create(context.Background(), sess))
	return sess
}

func (s *storeSuite) TestSessionRoundTrip() {
	ctx := context.Background()
	sess := s.newSession(testNow)

	got, err := s.sessions.Get(ctx, sess.ID())
	s.Require().NoError(err)
	s.Equal("access", got.AccessToken())
	s.Equal("refresh", got.RefreshToken())
	s.Equal(user.RoleCustomer, got.Role())
	s.True(sess.ExpiresAt().Equal(got.ExpiresAt()))

	var raw string
	s.Require().NoError(s.DB.QueryRow(ctx, "SELECT access_token FROM sessions WHERE id = $1", sess.ID()).Scan(&raw))
	s.NotEqual("access", raw)

	s.Require().NoError(got.Rotate("access-2", "", testNow.Add(time.Minute)))
	s.Require().NoError(s.sessions.UpdateTokens(ctx, got))
	got, err = s.sessions.Get(ctx, sess.ID())
	s.Require().NoError(err)
	s.Equal("access-2", got.AccessToken())
	s.Equal("refresh", got.RefreshToken())
}

func (s *storeSuite) TestSessionMissing() {
	_, err := s.sessions.Get(context.Background(), uuid.New())
	s.True(infra.IsKind(err, infra.KindNotFound), err)

	err = s.sessions.Delete(context.Background(), uuid.New())
	s.True(infra.IsKind(err, infra.KindNotFound), err)
}

func (s *storeSuite) TestFlowVersioning() {
	ctx := context.Background()
	sess := s.newSession(testNow)
	f, err := booking.Start(sess.ID(), []reservation.Service{builder.NewServiceBuilder().MustBuild()}, nil, "America/Bogota", testNow)
	s.Require().NoError(err)
	s.Require().NoError(s.flows.Create(ctx, f))

	loaded, err := s.flows.Get(ctx, f.ID(), sess.ID(), testNow)
	s.Require().NoError(err)
	if diff := cmp.Diff(f.Snapshot(), loaded.Snapshot(), cmpopts.EquateApproxTime(time.Millisecond), cmpopts.EquateEmpty()); diff != "" {
		s.Failf("flow mismatch", "(-want +got):\n%s", diff)
	}

	next, req, err := loaded.PickDay(time.Date(2030, 3, 10, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	next, err = next.ApplyAvailability(req, []string{"9:00"})
	s.Require().NoError(err)

	saved, err := s.flows.Update(ctx, next.Touch(testNow.Add(time.Minute)))
	s.Require().NoError(err)
	s.Equal(loaded.Version()+1, saved.Version())

	_, err = s.flows.Update(ctx, next)
	s.True(infra.IsKind(err, infra.KindConflict), "stale version must be refused: %v", err)

	_, err = s.flows.Get(ctx, f.ID(), uuid.New(), testNow)
	s.True(infra.IsKind(err, infra.KindNotFound), "other sessions cannot see the flow")

	_, err = s.flows.Get(ctx, f.ID(), sess.ID(), testNow.Add(3*time.Hour))
	s.True(infra.IsKind(err, infra.KindNotFound), "expired flows are gone")
}

func (s *storeSuite) TestFlowRequiresSession() {
	f, err := booking.Start(uuid.New(), []reservation.Service{builder.NewServiceBuilder().MustBuild()}, nil, "UTC", testNow)
	s.Require().NoError(err)

	err = s.flows.Create(context.Background(), f)

	s.True(infra.IsKind(err, infra.KindNotFound), err)
}

func (s *storeSuite) TestPurgeCascades() {
	ctx := context.Background()
	expired := s.newSession(testNow.Add(-2 * time.Hour))
	live := s.newSession(testNow)
	f, err := booking.Start(expired.ID(), []reservation.Service{builder.NewServiceBuilder().MustBuild()}, nil, "UTC", testNow)
	s.Require().NoError(err)
	s.Require().NoError(s.flows.Create(ctx, f))
	s.Require().NoError(s.searches.Save(ctx, expired.ID(), search.NewState(10), testNow))

	n, err := s.sessions.DeleteExpired(ctx, testNow)

	s.Require().NoError(err)
	s.Equal(int64(1), n)
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "sessions"))
	s.Zero(dbtest.CountRows(s.T(), s.DB, "booking_flows"))
	s.Zero(dbtest.CountRows(s.T(), s.DB, "search_states"))
	_, err = s.sessions.Get(ctx, live.ID())
	s.NoError(err)
}

func (s *storeSuite) TestSearchState() {
	ctx := context.Background()
	sess := s.newSession(testNow)

	_, found, err := s.searches.Get(ctx, sess.ID())
	s.Require().NoError(err)
	s.False(found)

	state := search.State{Filters: search.Filters{City: "Bogota"}, Page: 2, PageSize: 10}
	s.Require().NoError(s.searches.Save(ctx, sess.ID(), state, testNow))
	state.Page = 3
	s.Require().NoError(s.searches.Save(ctx, sess.ID(), state, testNow))

	got, found, err := s.searches.Get(ctx, sess.ID())
	s.Require().NoError(err)
	s.True(found)
	s.Equal(state, got)
}
