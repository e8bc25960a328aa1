//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/domain/reservation"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra/events"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/usecase/queries"
	"booking-gateway/internal/usecase/shared"
	"booking-gateway/tests/common/builder"
	commandsmock "booking-gateway/tests/mock/commands"
	queriesmock "booking-gateway/tests/mock/queries"
	sharedmock "booking-gateway/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const bogota = "America/Bogota"

var bookingDay = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	flows        *commandsmock.MockFlowRepository
	gateway      *sharedmock.MockMarketplaceGateway
	reservations *queriesmock.MockReservationQueries
	publisher    *sharedmock.MockEventPublisher
	viewer       shared.Viewer
	uc           commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.flows = commandsmock.NewMockFlowRepository(s.ctrl)
	s.gateway = sharedmock.NewMockMarketplaceGateway(s.ctrl)
	s.reservations = queriesmock.NewMockReservationQueries(s.ctrl)
	s.publisher = sharedmock.NewMockEventPublisher(s.ctrl)

	cfg := config.NewTestConfig()
	loc, err := cfg.Booking.Location()
	s.Require().NoError(err)

	s.viewer = shared.Viewer{
		SessionID: uuid.New(),
		UserID:    7,
		Role:      user.RoleCustomer,
		Tokens:    marketplace.Tokens{Access: "access", Refresh: "refresh"},
	}
	s.uc = commands.NewBookingCommands(
		s.flows, s.gateway, s.reservations, s.publisher,
		reservation.NewSlotFactory(loc), cfg, clock.NewMockClock(testNow), discardLogger(),
	)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func haircut() reservation.Service {
	return builder.NewServiceBuilder().MustBuild()
}

func beardTrim() reservation.Service {
	return builder.NewServiceBuilder().With(func(b *builder.ServiceBuilder) {
		b.ID = 12
		b.Name = "Beard trim"
		b.Duration = "30m"
	}).MustBuild()
}

func (s *BookingCommandsTestSuite) startFlow(services []reservation.Service, reschedule *booking.Reschedule) *booking.Flow {
	f, err := booking.Start(s.viewer.SessionID, services, reschedule, bogota, testNow)
	s.Require().NoError(err)
	return f
}

func (s *BookingCommandsTestSuite) withHours(f *booking.Flow, hours ...string) *booking.Flow {
	if f.State().Kind() == booking.KindSelectingService {
		picked, err := f.PickService(f.Services()[0].ID())
		s.Require().NoError(err)
		f = picked
	}
	_, req, err := f.PickDay(bookingDay)
	s.Require().NoError(err)
	next, err := f.ApplyAvailability(req, hours)
	s.Require().NoError(err)
	return next
}

func (s *BookingCommandsTestSuite) confirming(f *booking.Flow, hour string) *booking.Flow {
	next, err := s.withHours(f, "9:00", "10:30").PickHour(hour)
	s.Require().NoError(err)
	return next
}

func (s *BookingCommandsTestSuite) expectGet(f *booking.Flow) *gomock.Call {
	return s.flows.EXPECT().Get(gomock.Any(), f.ID(), s.viewer.SessionID, testNow).Return(f, nil)
}

func echoUpdate(_ context.Context, next *booking.Flow) (*booking.Flow, error) {
	return next, nil
}

func (s *BookingCommandsTestSuite) TestStart_ServicesInRequestOrder() {
	company := builder.NewUserBuilder().AsBusiness().BuildWire()
	company.Services = []marketplace.Service{
		builder.NewServiceBuilder().BuildWire(),
		builder.NewServiceBuilder().WithID(12).BuildWire(),
		builder.NewServiceBuilder().WithID(13).BuildWire(),
	}
	s.gateway.EXPECT().GetCompany(gomock.Any(), s.viewer.Tokens, int64(3)).Return(company, nil)
	s.flows.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	f, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{CompanyID: 3, ServiceIDs: []int64{13, 11, 13}})

	s.Require().NoError(err)
	services := f.Services()
	s.Require().Len(services, 2)
	s.Equal(int64(13), services[0].ID())
	s.Equal(int64(11), services[1].ID())
	s.Equal(booking.KindSelectingService, f.State().Kind())
	s.Equal(bogota, f.Timezone())
	s.Equal(s.viewer.SessionID, f.SessionID())
}

func (s *BookingCommandsTestSuite) TestStart_WholeCatalogWhenNoServicesNamed() {
	company := builder.NewUserBuilder().AsBusiness().BuildWire()
	company.Services = []marketplace.Service{builder.NewServiceBuilder().BuildWire()}
	s.gateway.EXPECT().GetCompany(gomock.Any(), gomock.Any(), int64(3)).Return(company, nil)
	s.flows.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	f, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{CompanyID: 3, Timezone: "Europe/Madrid"})

	s.Require().NoError(err)
	s.Len(f.Services(), 1)
	s.Equal(booking.KindSelectingDate, f.State().Kind(), "a single service needs no selection")
	s.Equal("Europe/Madrid", f.Timezone())
}

func (s *BookingCommandsTestSuite) TestStart_Rejections() {
	company := builder.NewUserBuilder().AsBusiness().BuildWire()
	company.Services = []marketplace.Service{builder.NewServiceBuilder().BuildWire()}

	s.Run("service not offered by the company", func() {
		s.gateway.EXPECT().GetCompany(gomock.Any(), gomock.Any(), gomock.Any()).Return(company, nil)

		_, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{CompanyID: 3, ServiceIDs: []int64{99}})

		s.ErrorIs(err, booking.ErrUnknownService)
	})

	s.Run("company without services", func() {
		empty := company
		empty.Services = nil
		s.gateway.EXPECT().GetCompany(gomock.Any(), gomock.Any(), gomock.Any()).Return(empty, nil)

		_, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{CompanyID: 3})

		s.True(errs.Is(err, commands.ErrNothingToBook), err)
	})

	s.Run("unknown timezone", func() {
		s.gateway.EXPECT().GetCompany(gomock.Any(), gomock.Any(), gomock.Any()).Return(company, nil)

		_, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{CompanyID: 3, Timezone: "Mars/Olympus"})

		s.ErrorIs(err, booking.ErrInvalidTimezone)
	})

	s.Run("company lookup fails", func() {
		s.gateway.EXPECT().GetCompany(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(marketplace.User{}, &marketplace.APIError{Kind: marketplace.KindNotFound, Status: 404})

		_, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{CompanyID: 3})

		s.True(marketplace.IsKind(err, marketplace.KindNotFound))
	})
}

func (s *BookingCommandsTestSuite) reservationPage(res *reservation.Reservation, page int) *queries.ReservationPage {
	return &queries.ReservationPage{
		Items:     []queries.ReservationView{{Reservation: res, Actions: res.OfferedActions(s.viewer.Role)}},
		Count:     1,
		Page:      page,
		PageSize:  10,
		PageCount: 1,
	}
}

func (s *BookingCommandsTestSuite) TestStart_Reschedule() {
	res := builder.NewReservationBuilder().MustBuild()
	id := res.ID()
	s.reservations.EXPECT().List(gomock.Any(), s.viewer, 1, 10).Return(s.reservationPage(res, 1), nil)
	s.flows.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	f, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{ReservationID: &id, Page: 1, PageSize: 10})

	s.Require().NoError(err)
	s.Require().NotNil(f.Reschedule())
	s.Equal(id, f.Reschedule().ReservationID)
	s.Equal(1, f.Reschedule().Page)
	s.Equal(10, f.Reschedule().PageSize)
	s.Equal(reservation.StatusPending, f.Reschedule().Status)
	s.Equal(booking.KindSelectingDate, f.State().Kind())
}

func (s *BookingCommandsTestSuite) TestStart_RescheduleRejections() {
	s.Run("reservation not on the page", func() {
		missing := int64(404)
		res := builder.NewReservationBuilder().MustBuild()
		s.reservations.EXPECT().List(gomock.Any(), gomock.Any(), 0, 0).Return(s.reservationPage(res, 0), nil)

		_, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{ReservationID: &missing})

		s.True(errs.Is(err, shared.ErrReservationNotFound), err)
	})

	s.Run("reservation no longer reschedulable", func() {
		res := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).MustBuild()
		id := res.ID()
		s.reservations.EXPECT().List(gomock.Any(), gomock.Any(), 0, 0).Return(s.reservationPage(res, 0), nil)

		_, err := s.uc.Start(context.Background(), s.viewer, commands.StartFlowInput{ReservationID: &id})

		s.True(errs.Is(err, commands.ErrRescheduleNotOffered), err)
	})
}

func (s *BookingCommandsTestSuite) TestPickService() {
	f := s.startFlow([]reservation.Service{haircut(), beardTrim()}, nil)
	s.expectGet(f)
	s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	next, err := s.uc.PickService(context.Background(), s.viewer, f.ID(), 12)

	s.Require().NoError(err)
	s.Equal(1, next.CurrentIndex())
	s.Equal(booking.KindSelectingDate, next.State().Kind())
	s.Equal(testNow, next.UpdatedAt())
}

func (s *BookingCommandsTestSuite) TestStep_FlowNotFound() {
	id := uuid.New()
	s.flows.EXPECT().Get(gomock.Any(), id, s.viewer.SessionID, testNow).Return(nil, notFound())

	_, err := s.uc.NextService(context.Background(), s.viewer, id)

	s.True(errs.Is(err, shared.ErrFlowNotFound), err)
}

func (s *BookingCommandsTestSuite) TestStep_VersionConflict() {
	f := s.startFlow([]reservation.Service{haircut(), beardTrim()}, nil)
	s.expectGet(f)
	s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, conflict())

	_, err := s.uc.NextService(context.Background(), s.viewer, f.ID())

	s.True(errs.Is(err, commands.ErrFlowConflict), err)
}

func (s *BookingCommandsTestSuite) TestPickDay_AppliesFetchedHours() {
	f := s.startFlow([]reservation.Service{haircut()}, nil)
	s.expectGet(f)
	// Midnight in Bogota is 05:00 UTC.
	s.gateway.EXPECT().AvailableHours(gomock.Any(), s.viewer.Tokens, int64(11), time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)).
		Return([]string{"9:00", "10:30"}, nil)
	s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	next, err := s.uc.PickDay(context.Background(), s.viewer, f.ID(), time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC))

	s.Require().NoError(err)
	st, ok := next.State().(booking.SelectingTime)
	s.Require().True(ok, "got %s", next.State().Kind())
	s.Equal(bookingDay, st.Day)
	s.Equal([]string{"9:00", "10:30"}, st.Hours)
}

func (s *BookingCommandsTestSuite) TestPickDay_FetchFailureLeavesFlowUntouched() {
	f := s.startFlow([]reservation.Service{haircut()}, nil)
	s.expectGet(f)
	s.gateway.EXPECT().AvailableHours(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &marketplace.APIError{Kind: marketplace.KindUpstream, Status: 502})

	_, err := s.uc.PickDay(context.Background(), s.viewer, f.ID(), bookingDay)

	s.True(marketplace.IsKind(err, marketplace.KindUpstream))
	s.Equal(booking.KindSelectingDate, f.State().Kind())
}

func (s *BookingCommandsTestSuite) TestPickDay_StaleResultAfterReset() {
	f := s.startFlow([]reservation.Service{haircut()}, nil)
	reset, err := f.Cancel()
	s.Require().NoError(err)

	gomock.InOrder(
		s.expectGet(f),
		s.gateway.EXPECT().AvailableHours(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"9:00"}, nil),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, conflict()),
		s.flows.EXPECT().Get(gomock.Any(), f.ID(), s.viewer.SessionID, testNow).Return(reset, nil),
	)

	_, err = s.uc.PickDay(context.Background(), s.viewer, f.ID(), bookingDay)

	s.ErrorIs(err, booking.ErrStaleResult)
}

func (s *BookingCommandsTestSuite) TestPickDay_ConflictWithUnrelatedWriteIsRetried() {
	f := s.startFlow([]reservation.Service{haircut()}, nil)

	gomock.InOrder(
		s.expectGet(f),
		s.gateway.EXPECT().AvailableHours(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"9:00"}, nil),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, conflict()),
		s.expectGet(f),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate),
	)

	next, err := s.uc.PickDay(context.Background(), s.viewer, f.ID(), bookingDay)

	s.Require().NoError(err)
	s.Equal(booking.KindSelectingTime, next.State().Kind())
}

func (s *BookingCommandsTestSuite) TestPickHour() {
	s.Run("padded label matches the offered spelling", func() {
		f := s.withHours(s.startFlow([]reservation.Service{haircut()}, nil), "9:00", "10:30")
		s.expectGet(f)
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		next, err := s.uc.PickHour(context.Background(), s.viewer, f.ID(), "09:00")

		s.Require().NoError(err)
		st, ok := next.State().(booking.Confirming)
		s.Require().True(ok)
		s.Equal("9:00", st.Hour)
	})

	s.Run("picking the selected hour again deselects it", func() {
		f := s.confirming(s.startFlow([]reservation.Service{haircut()}, nil), "10:30")
		s.expectGet(f)
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		next, err := s.uc.PickHour(context.Background(), s.viewer, f.ID(), "10:30")

		s.Require().NoError(err)
		s.Equal(booking.KindSelectingTime, next.State().Kind())
	})

	s.Run("hour not offered", func() {
		f := s.withHours(s.startFlow([]reservation.Service{haircut()}, nil), "9:00")
		s.expectGet(f)

		_, err := s.uc.PickHour(context.Background(), s.viewer, f.ID(), "11:00")

		s.ErrorIs(err, booking.ErrHourNotOffered)
	})

	s.Run("malformed label is rejected before loading", func() {
		_, err := s.uc.PickHour(context.Background(), s.viewer, uuid.New(), "9am")

		s.ErrorIs(err, reservation.ErrInvalidHourLabel)
	})
}

func (s *BookingCommandsTestSuite) TestSubmit_CreatesReservation() {
	f := s.confirming(s.startFlow([]reservation.Service{haircut()}, nil), "9:00")
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	gomock.InOrder(
		s.expectGet(f),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, next *booking.Flow) (*booking.Flow, error) {
				st, ok := next.State().(booking.Confirming)
				s.True(ok && st.Submitting, "the in-flight mark is stored before the upstream call")
				return next, nil
			}),
		s.gateway.EXPECT().CreateReservation(gomock.Any(), s.viewer.Tokens, marketplace.CreateReservationRequest{
			ServiceID: 11,
			StartTime: start,
			EndTime:   end,
		}).Return("Reservation created", nil),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate),
	)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			s.Equal(events.TypeRequested, e.Type)
			s.Equal(int64(11), e.ServiceID)
			s.Equal(reservation.StatusPending.String(), e.Status)
			s.Equal(start, *e.StartTime)
			return nil
		})

	res, err := s.uc.Submit(context.Background(), s.viewer, f.ID())

	s.Require().NoError(err)
	s.Equal("Reservation created", res.Message)
	s.True(res.Flow.IsFinished())
}

func (s *BookingCommandsTestSuite) TestSubmit_MultiServiceAdvances() {
	f := s.confirming(s.startFlow([]reservation.Service{haircut(), beardTrim()}, nil), "9:00")
	s.expectGet(f)
	s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate).Times(2)
	s.gateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return("ok", nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := s.uc.Submit(context.Background(), s.viewer, f.ID())

	s.Require().NoError(err, "publishing is best effort")
	s.Equal(booking.KindSelectingDate, res.Flow.State().Kind())
	s.Equal(1, res.Flow.CurrentIndex())
	s.Equal([]int64{11}, res.Flow.Scheduled())
}

func (s *BookingCommandsTestSuite) TestSubmit_FailureKeepsSelection() {
	f := s.confirming(s.startFlow([]reservation.Service{haircut()}, nil), "10:30")
	rejected := &marketplace.APIError{Kind: marketplace.KindRejected, Status: 400, Message: "Slot taken"}

	gomock.InOrder(
		s.expectGet(f),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate),
		s.gateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return("", rejected),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, next *booking.Flow) (*booking.Flow, error) {
				st, ok := next.State().(booking.Confirming)
				s.Require().True(ok)
				s.False(st.Submitting)
				s.Equal("10:30", st.Hour)
				s.Equal(bookingDay, st.Day)
				return next, nil
			}),
	)

	_, err := s.uc.Submit(context.Background(), s.viewer, f.ID())

	apiErr, ok := marketplace.AsAPIError(err)
	s.Require().True(ok)
	s.Equal("Slot taken", apiErr.Message)
}

func (s *BookingCommandsTestSuite) TestSubmit_Reschedule() {
	pinned := &booking.Reschedule{ReservationID: 42, Status: reservation.StatusPending, Page: 2, PageSize: 5}
	f := s.confirming(s.startFlow([]reservation.Service{haircut()}, pinned), "9:00")
	start := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	s.expectGet(f)
	s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate).Times(2)
	s.gateway.EXPECT().UpdateReservation(gomock.Any(), s.viewer.Tokens, int64(42), marketplace.UpdateReservationRequest{
		Status:    "Rescheduled",
		StartTime: &start,
		EndTime:   &end,
	}).Return("Reservation updated", nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			s.Equal(events.TypeRescheduled, e.Type)
			s.Equal(int64(42), e.ReservationID)
			return nil
		})
	rescheduled := builder.NewReservationBuilder().WithStatus(reservation.StatusRescheduled).MustBuild()
	refreshed := s.reservationPage(rescheduled, 2)
	s.reservations.EXPECT().List(gomock.Any(), s.viewer, 2, 5).Return(refreshed, nil)

	res, err := s.uc.Submit(context.Background(), s.viewer, f.ID())

	s.Require().NoError(err)
	s.True(res.Flow.IsFinished())
	s.Equal(refreshed, res.Reservations)
}

func (s *BookingCommandsTestSuite) TestSubmit_RescheduleRefreshFailureKeepsSuccess() {
	pinned := &booking.Reschedule{ReservationID: 42, Status: reservation.StatusPending}
	f := s.confirming(s.startFlow([]reservation.Service{haircut()}, pinned), "9:00")

	s.expectGet(f)
	s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate).Times(2)
	s.gateway.EXPECT().UpdateReservation(gomock.Any(), gomock.Any(), int64(42), gomock.Any()).Return("Reservation updated", nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	s.reservations.EXPECT().List(gomock.Any(), gomock.Any(), 0, 0).
		Return(nil, &marketplace.APIError{Kind: marketplace.KindUpstream, Status: 503})

	res, err := s.uc.Submit(context.Background(), s.viewer, f.ID())

	s.Require().NoError(err)
	s.Equal("Reservation updated", res.Message)
	s.Nil(res.Reservations)
}

func (s *BookingCommandsTestSuite) TestSubmit_CompletionConflictReloadsFlow() {
	f := s.confirming(s.startFlow([]reservation.Service{haircut(), beardTrim()}, nil), "9:00")
	stored, _, err := f.BeginSubmit()
	s.Require().NoError(err)

	gomock.InOrder(
		s.flows.EXPECT().Get(gomock.Any(), f.ID(), s.viewer.SessionID, testNow).Return(f, nil),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate),
		s.gateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return("Reservation created", nil),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, conflict()),
		s.flows.EXPECT().Get(gomock.Any(), f.ID(), s.viewer.SessionID, testNow).Return(stored, nil),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate),
	)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.uc.Submit(context.Background(), s.viewer, f.ID())

	s.Require().NoError(err, "the reservation exists upstream")
	s.Equal("Reservation created", res.Message)
	s.Equal([]int64{11}, res.Flow.Scheduled())
	s.Equal(booking.KindSelectingDate, res.Flow.State().Kind())
}

func (s *BookingCommandsTestSuite) TestSubmit_CompletionReportedWhenFlowIsGone() {
	f := s.confirming(s.startFlow([]reservation.Service{haircut()}, nil), "9:00")

	gomock.InOrder(
		s.flows.EXPECT().Get(gomock.Any(), f.ID(), s.viewer.SessionID, testNow).Return(f, nil),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate),
		s.gateway.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).Return("Reservation created", nil),
		s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, conflict()),
		s.flows.EXPECT().Get(gomock.Any(), f.ID(), s.viewer.SessionID, testNow).Return(nil, notFound()),
	)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.uc.Submit(context.Background(), s.viewer, f.ID())

	s.Require().NoError(err)
	s.True(res.Flow.IsFinished())
}

func (s *BookingCommandsTestSuite) TestSubmit_RequiresConfirmation() {
	f := s.withHours(s.startFlow([]reservation.Service{haircut()}, nil), "9:00")
	s.expectGet(f)

	_, err := s.uc.Submit(context.Background(), s.viewer, f.ID())

	s.ErrorIs(err, booking.ErrInvalidTransition)
}

func (s *BookingCommandsTestSuite) TestCancel_ResetsSelection() {
	f := s.confirming(s.startFlow([]reservation.Service{haircut(), beardTrim()}, nil), "9:00")
	s.expectGet(f)
	s.flows.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	next, err := s.uc.Cancel(context.Background(), s.viewer, f.ID())

	s.Require().NoError(err)
	s.Equal(booking.KindSelectingService, next.State().Kind())
	s.Equal(0, next.CurrentIndex())
	s.Equal(f.Generation()+1, next.Generation())
}

func (s *BookingCommandsTestSuite) TestCancel_RefusedWhileSubmitting() {
	f := s.confirming(s.startFlow([]reservation.Service{haircut(), beardTrim()}, nil), "9:00")
	inFlight, _, err := f.BeginSubmit()
	s.Require().NoError(err)
	s.expectGet(inFlight)

	_, err = s.uc.Cancel(context.Background(), s.viewer, f.ID())

	s.ErrorIs(err, booking.ErrSubmitInFlight)
}

func (s *BookingCommandsTestSuite) TestClose() {
	s.Run("deletes the flow", func() {
		id := uuid.New()
		s.flows.EXPECT().Delete(gomock.Any(), id, s.viewer.SessionID).Return(nil)

		s.NoError(s.uc.Close(context.Background(), s.viewer, id))
	})

	s.Run("unknown flow", func() {
		id := uuid.New()
		s.flows.EXPECT().Delete(gomock.Any(), id, s.viewer.SessionID).Return(notFound())

		err := s.uc.Close(context.Background(), s.viewer, id)

		s.True(errs.Is(err, shared.ErrFlowNotFound), err)
	})
}
