//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking-gateway/internal/domain/auth"
	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/commands"
	"booking-gateway/internal/usecase/shared"
	"booking-gateway/tests/common/builder"
	commandsmock "booking-gateway/tests/mock/commands"
	sharedmock "booking-gateway/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	gateway  *sharedmock.MockAuthGateway
	sessions *commandsmock.MockSessionRepository
	uc       commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = sharedmock.NewMockAuthGateway(s.ctrl)
	s.sessions = commandsmock.NewMockSessionRepository(s.ctrl)
	s.uc = commands.NewAuthCommands(s.gateway, s.sessions, config.NewTestConfig(), clock.NewMockClock(testNow), discardLogger())
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) credentials() auth.Credentials {
	creds, err := auth.NewCredentials("ana@example.com", "password1")
	s.Require().NoError(err)
	return creds
}

func (s *AuthCommandsTestSuite) TestLogin_OpensSession() {
	profile := builder.NewUserBuilder().BuildWire()
	tokens := marketplace.Tokens{Access: "access", Refresh: "refresh"}

	s.gateway.EXPECT().Login(gomock.Any(), marketplace.LoginRequest{Email: "ana@example.com", Password: "password1"}).
		Return(marketplace.AuthResult{AccessToken: "access", RefreshToken: "refresh"}, nil)
	s.gateway.EXPECT().Profile(gomock.Any(), tokens).Return(profile, nil)
	s.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sess *session.Session) error {
			s.Equal("access", sess.AccessToken())
			s.Equal("refresh", sess.RefreshToken())
			return nil
		})

	res, err := s.uc.Login(context.Background(), s.credentials())

	s.Require().NoError(err)
	s.Require().NotNil(res.Session)
	s.Equal(profile.ID, res.Session.UserID())
	s.Equal(user.RoleCustomer, res.Session.Role())
	s.Equal(testNow.Add(time.Hour), res.Session.ExpiresAt())
	s.Equal(profile, res.Profile)
}

func (s *AuthCommandsTestSuite) TestLogin_LegacyTokenShape() {
	s.gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return(marketplace.AuthResult{Token: "legacy"}, nil)
	s.gateway.EXPECT().Profile(gomock.Any(), marketplace.Tokens{Access: "legacy"}).
		Return(builder.NewUserBuilder().AsBusiness().BuildWire(), nil)
	s.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.uc.Login(context.Background(), s.credentials())

	s.Require().NoError(err)
	s.Equal("legacy", res.Session.AccessToken())
	s.Equal(user.RoleBusiness, res.Session.Role())
}

func (s *AuthCommandsTestSuite) TestLogin_Errors() {
	tests := []struct {
		name   string
		result marketplace.AuthResult
		err    error
		want   error
	}{
		{
			name: "upstream rejects credentials",
			err:  &marketplace.APIError{Kind: marketplace.KindUnauthorized, Status: 401, Message: "Invalid credentials"},
			want: commands.ErrInvalidCredentials,
		},
		{
			name: "no token issued",
			want: shared.ErrUnexpectedUpstreamData,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return(tt.result, tt.err)

			_, err := s.uc.Login(context.Background(), s.credentials())

			s.True(errs.Is(err, tt.want), err)
		})
	}
}

func (s *AuthCommandsTestSuite) TestLogin_ProfileWithUnknownRole() {
	s.gateway.EXPECT().Login(gomock.Any(), gomock.Any()).Return(marketplace.AuthResult{AccessToken: "access"}, nil)
	s.gateway.EXPECT().Profile(gomock.Any(), gomock.Any()).
		Return(builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.Role = "admin" }).BuildWire(), nil)

	_, err := s.uc.Login(context.Background(), s.credentials())

	s.True(errs.Is(err, shared.ErrUnexpectedUpstreamData), err)
}

func (s *AuthCommandsTestSuite) TestRegister_WithoutTokens() {
	reg, err := auth.NewRegistration(auth.RegistrationParams{
		FirstName: "Ana",
		LastName:  "Ruiz",
		Email:     "ana@example.com",
		Password:  "password1",
		Role:      "customer",
		Country:   "Colombia",
		City:      "Bogota",
	})
	s.Require().NoError(err)

	s.gateway.EXPECT().Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req marketplace.RegisterRequest) (marketplace.AuthResult, error) {
			s.Equal("ana@example.com", req.Email)
			s.Equal("customer", req.Role)
			s.Equal("Bogota", req.City)
			return marketplace.AuthResult{}, nil
		})

	res, err := s.uc.Register(context.Background(), reg)

	s.Require().NoError(err)
	s.Nil(res.Session)
}

func (s *AuthCommandsTestSuite) TestRegister_InvitationOpensSession() {
	reg, err := auth.NewRegistration(auth.RegistrationParams{
		FirstName: "Ana",
		LastName:  "Ruiz",
		Password:  "password1",
		Role:      "business",
		Country:   "Colombia",
		City:      "Bogota",
		Token:     "invite",
	})
	s.Require().NoError(err)

	s.gateway.EXPECT().Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req marketplace.RegisterRequest) (marketplace.AuthResult, error) {
			s.Empty(req.Email)
			s.Equal("invite", req.Token)
			return marketplace.AuthResult{AccessToken: "access", RefreshToken: "refresh"}, nil
		})
	s.gateway.EXPECT().Profile(gomock.Any(), gomock.Any()).Return(builder.NewUserBuilder().AsBusiness().BuildWire(), nil)
	s.sessions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	res, err := s.uc.Register(context.Background(), reg)

	s.Require().NoError(err)
	s.Require().NotNil(res.Session)
	s.Equal(user.RoleBusiness, res.Session.Role())
}

func (s *AuthCommandsTestSuite) TestResetPassword_SendsConfirmation() {
	reset, err := auth.NewPasswordReset("password1", "password1", "reset-token")
	s.Require().NoError(err)

	s.gateway.EXPECT().ResetPassword(gomock.Any(), marketplace.ResetPasswordRequest{
		Password:        "password1",
		ConfirmPassword: "password1",
		Token:           "reset-token",
	}).Return("Password updated", nil)

	msg, err := s.uc.ResetPassword(context.Background(), reset)

	s.Require().NoError(err)
	s.Equal("Password updated", msg)
}

func (s *AuthCommandsTestSuite) TestLogout_DropsSessionEvenIfUpstreamFails() {
	sess, err := session.New("access", "refresh", 7, user.RoleCustomer, testNow, time.Hour)
	s.Require().NoError(err)

	s.gateway.EXPECT().Logout(gomock.Any(), marketplace.Tokens{Access: "access", Refresh: "refresh"}).
		Return(errors.New("connection reset"))
	s.sessions.EXPECT().Delete(gomock.Any(), sess.ID()).Return(nil)

	s.NoError(s.uc.Logout(context.Background(), sess))
}
