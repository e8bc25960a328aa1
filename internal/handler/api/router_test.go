//go:build unit

package api_test

import (
	"log/slog"
	"net/http"

	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/handler"
	"booking-gateway/internal/handler/api"
	"booking-gateway/internal/handler/middleware"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/usecase/shared"
	"booking-gateway/tests/common/authtest"
	commandsmock "booking-gateway/tests/mock/commands"
	queriesmock "booking-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// routerSuite serves requests through the full router with every use case mocked. The
// session middleware is real; only SessionCommands behind it is mocked.
type routerSuite struct {
	suite.Suite
	cfg          config.Config
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	sessions     *commandsmock.MockSessionCommands
	authCmds     *commandsmock.MockAuthCommands
	bookingCmds  *commandsmock.MockBookingCommands
	reservCmds   *commandsmock.MockReservationCommands
	bookingQ     *queriesmock.MockBookingQueries
	companyQ     *queriesmock.MockCompanyQueries
	availability *queriesmock.MockAvailabilityQueries
	profileQ     *queriesmock.MockProfileQueries
	referenceQ   *queriesmock.MockReferenceQueries
	reservQ      *queriesmock.MockReservationQueries
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cfg = config.NewTestConfig()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.sessions = commandsmock.NewMockSessionCommands(s.mockCtrl)
	s.authCmds = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.bookingCmds = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.reservCmds = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.bookingQ = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.companyQ = queriesmock.NewMockCompanyQueries(s.mockCtrl)
	s.availability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.profileQ = queriesmock.NewMockProfileQueries(s.mockCtrl)
	s.referenceQ = queriesmock.NewMockReferenceQueries(s.mockCtrl)
	s.reservQ = queriesmock.NewMockReservationQueries(s.mockCtrl)

	logger := slog.New(slog.DiscardHandler)
	err := handler.NewRouter(s.router, s.cfg, logger, handler.Handlers{
		Auth:        api.NewAuthHandler(s.authCmds, s.cfg, logger),
		Profile:     api.NewProfileHandler(s.profileQ, s.cfg, logger),
		Reference:   api.NewReferenceHandler(s.referenceQ, s.cfg, logger),
		Company:     api.NewCompanyHandler(s.companyQ, s.availability, s.cfg, logger),
		Booking:     api.NewBookingHandler(s.bookingCmds, s.bookingQ, s.cfg, logger),
		Reservation: api.NewReservationHandler(s.reservCmds, s.reservQ, s.cfg, logger),
		Session:     middleware.NewSessionMiddleware(s.sessions, s.cfg, logger),
	})
	s.Require().NoError(err)
}

func (s *routerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// signIn makes the next request carry a live session and returns its cookie and viewer.
func (s *routerSuite) signIn(role user.Role) (*http.Cookie, shared.Viewer) {
	sess := authtest.NewSession(s.T(), 7, role)
	s.sessions.EXPECT().Resolve(gomock.Any(), sess.ID()).Return(sess, nil)
	return authtest.Cookie(s.cfg, sess), shared.ViewerFrom(sess)
}

func (s *routerSuite) signInSession(role user.Role) (*http.Cookie, *session.Session) {
	sess := authtest.NewSession(s.T(), 7, role)
	s.sessions.EXPECT().Resolve(gomock.Any(), sess.ID()).Return(sess, nil)
	return authtest.Cookie(s.cfg, sess), sess
}
