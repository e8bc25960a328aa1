package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/infra"
	"booking-gateway/internal/infra/marketplace"
	"booking-gateway/internal/pkg/clock"
	"booking-gateway/internal/pkg/config"
	"booking-gateway/internal/pkg/errs"
	"booking-gateway/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errs.New("session not found")
	ErrSessionExpired  = errs.New("session expired")
)

type SessionCommands interface {
	// Resolve loads a live session, refreshing its access token first when it is about to
	// expire.
	Resolve(ctx context.Context, id uuid.UUID) (*session.Session, error)
	Invalidate(ctx context.Context, id uuid.UUID) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type sessionCommandsImpl struct {
	sessions  SessionRepository
	flows     FlowRepository
	auth      shared.AuthGateway
	inspector TokenInspector
	cfg       config.SessionConfig
	clock     clock.Clock
	logger    *slog.Logger
}

func NewSessionCommands(
	sessions SessionRepository,
	flows FlowRepository,
	auth shared.AuthGateway,
	inspector TokenInspector,
	cfg config.Config,
	clock clock.Clock,
	logger *slog.Logger,
) SessionCommands {
	return &sessionCommandsImpl{
		sessions:  sessions,
		flows:     flows,
		auth:      auth,
		inspector: inspector,
		cfg:       cfg.Session,
		clock:     clock,
		logger:    logger,
	}
}

func (u *sessionCommandsImpl) Resolve(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	sess, err := u.sessions.Get(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSessionNotFound)
		}
		return nil, errs.Wrap(err, "load session")
	}

	now := u.clock.Now()
	if sess.IsExpired(now) {
		u.drop(ctx, id)
		return nil, ErrSessionExpired
	}

	needsRefresh, err := u.inspector.NeedsRefresh(sess.AccessToken(), now, u.cfg.RefreshLeeway)
	if err != nil {
		// Opaque tokens carry no expiry; the marketplace will answer 401 when they lapse.
		u.logger.Debug("access token is not inspectable", "session_id", id, "error", err)
		return sess, nil
	}
	if !needsRefresh {
		return sess, nil
	}
	return u.refresh(ctx, sess, now)
}

func (u *sessionCommandsImpl) refresh(ctx context.Context, sess *session.Session, now time.Time) (*session.Session, error) {
	if sess.RefreshToken() == "" {
		u.drop(ctx, sess.ID())
		return nil, ErrSessionExpired
	}

	result, err := u.auth.Refresh(ctx, shared.TokensOf(sess))
	if err != nil {
		if marketplace.IsKind(err, marketplace.KindUnauthorized) {
			u.drop(ctx, sess.ID())
			return nil, errs.Mark(err, ErrSessionExpired)
		}
		return nil, errs.Wrap(err, "refresh access token")
	}

	if err := sess.Rotate(result.Access(), result.RefreshToken, now); err != nil {
		return nil, errs.Mark(err, shared.ErrUnexpectedUpstreamData)
	}
	if err := u.sessions.UpdateTokens(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "store refreshed tokens")
	}

	u.logger.Info("access token refreshed", "session_id", sess.ID(), "user_id", sess.UserID())
	return sess, nil
}

func (u *sessionCommandsImpl) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := u.sessions.Delete(ctx, id); err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return errs.Wrap(err, "delete session")
	}
	return nil
}

func (u *sessionCommandsImpl) PurgeExpired(ctx context.Context) (int64, error) {
	now := u.clock.Now()

	flows, err := u.flows.DeleteExpired(ctx, now)
	if err != nil {
		return 0, errs.Wrap(err, "purge flows")
	}
	sessions, err := u.sessions.DeleteExpired(ctx, now)
	if err != nil {
		return flows, errs.Wrap(err, "purge sessions")
	}
	return flows + sessions, nil
}

func (u *sessionCommandsImpl) drop(ctx context.Context, id uuid.UUID) {
	if err := u.Invalidate(ctx, id); err != nil {
		u.logger.Warn("failed to delete session", "session_id", id, "error", err)
	}
}
