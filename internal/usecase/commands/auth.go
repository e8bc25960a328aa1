package commands

import (
	"context"
	"log/slog"

	"booking-gateway/internal/domain/auth"
	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"
)

var ErrInvalidCredentials = errs.New("invalid email or password")

// SignInResult carries the new session. Session is nil when the marketplace accepted a
// registration without issuing tokens, e.g. pending email verification.
type SignInResult struct {
	Session *session.Session
	Profile marketplace.User
}

type AuthCommands interface {
	Login(ctx context.Context, creds auth.Credentials) (*SignInResult, error)
	Register(ctx context.Context, reg auth.Registration) (*SignInResult, error)
	ForgotPassword(ctx context.Context, email user.Email) (string, error)
	ResetPassword(ctx context.Context, reset auth.PasswordReset) (string, error)
	ResendVerificationEmail(ctx context.Context, email user.Email) (string, error)
	Logout(ctx context.Context, sess *session.Session) error
}

type authCommandsImpl struct {
	gateway  shared.AuthGateway
	sessions SessionRepository
	cfg      config.SessionConfig
	clock    clock.Clock
	logger   *slog.Logger
}

func NewAuthCommands(
	gateway shared.AuthGateway,
	sessions SessionRepository,
	cfg config.Config,
	clock clock.Clock,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		gateway:  gateway,
		sessions: sessions,
		cfg:      cfg.Session,
		clock:    clock,
		logger:   logger,
	}
}

func (u *authCommandsImpl) Login(ctx context.Context, creds auth.Credentials) (*SignInResult, error) {
	result, err := u.gateway.Login(ctx, marketplace.LoginRequest{
		Email:    creds.Email().Value(),
		Password: creds.Password().Value(),
	})
	if err != nil {
		if marketplace.IsKind(err, marketplace.KindUnauthorized) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Wrap(err, "login")
	}
	if result.Access() == "" {
		return nil, errs.Wrap(shared.ErrUnexpectedUpstreamData, "login returned no access token")
	}
	return u.openSession(ctx, result)
}

func (u *authCommandsImpl) Register(ctx context.Context, reg auth.Registration) (*SignInResult, error) {
	req := marketplace.RegisterRequest{
		FirstName:   reg.FirstName.Value(),
		LastName:    reg.LastName.Value(),
		City:        reg.City,
		Country:     reg.Country,
		PhoneNumber: reg.PhoneNumber,
		Password:    reg.Password.Value(),
		Token:       reg.Token,
		Role:        reg.Role.String(),
		Description: reg.Description,
		Address:     reg.Address,
	}
	if reg.Email != nil {
		req.Email = reg.Email.Value()
	}

	result, err := u.gateway.Register(ctx, req)
	if err != nil {
		return nil, errs.Wrap(err, "register")
	}
	if result.Access() == "" {
		return &SignInResult{}, nil
	}
	return u.openSession(ctx, result)
}

// openSession learns who the tokens belong to and stores them behind a new session id.
func (u *authCommandsImpl) openSession(ctx context.Context, result marketplace.AuthResult) (*SignInResult, error) {
	tokens := marketplace.Tokens{Access: result.Access(), Refresh: result.RefreshToken}

	profile, err := u.gateway.Profile(ctx, tokens)
	if err != nil {
		return nil, errs.Wrap(err, "load profile")
	}
	role, err := user.NewRole(profile.Role)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "profile role"), shared.ErrUnexpectedUpstreamData)
	}

	sess, err := session.New(tokens.Access, tokens.Refresh, profile.ID, role, u.clock.Now(), u.cfg.TTL)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrUnexpectedUpstreamData)
	}
	if err := u.sessions.Create(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "store session")
	}

	u.logger.Info("session opened", "session_id", sess.ID(), "user_id", profile.ID, "role", role)
	return &SignInResult{Session: sess, Profile: profile}, nil
}

func (u *authCommandsImpl) ForgotPassword(ctx context.Context, email user.Email) (string, error) {
	msg, err := u.gateway.ForgotPassword(ctx, marketplace.ForgotPasswordRequest{Email: email.Value()})
	return msg, errs.Wrap(err, "forgot password")
}

func (u *authCommandsImpl) ResetPassword(ctx context.Context, reset auth.PasswordReset) (string, error) {
	msg, err := u.gateway.ResetPassword(ctx, marketplace.ResetPasswordRequest{
		Password:        reset.Password.Value(),
		ConfirmPassword: reset.Password.Value(),
		Token:           reset.Token,
	})
	return msg, errs.Wrap(err, "reset password")
}

func (u *authCommandsImpl) ResendVerificationEmail(ctx context.Context, email user.Email) (string, error) {
	msg, err := u.gateway.ResendVerificationEmail(ctx, marketplace.ResendVerificationRequest{Email: email.Value()})
	return msg, errs.Wrap(err, "resend verification email")
}

// Logout always drops the local session. An upstream failure only means the refresh token
// stays valid until it expires.
func (u *authCommandsImpl) Logout(ctx context.Context, sess *session.Session) error {
	if err := u.gateway.Logout(ctx, shared.TokensOf(sess)); err != nil {
		u.logger.Warn("upstream logout failed", "session_id", sess.ID(), "error", err)
	}
	if err := u.sessions.Delete(ctx, sess.ID()); err != nil {
		return errs.Wrap(err, "delete session")
	}
	return nil
}
