package store

import (
	"context"
	"log/slog"
	"time"

	"booking-gateway/internal/domain/session"
	"booking-gateway/internal/domain/user"
	"booking-gateway/internal/infra"
	"booking-gateway/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Sealer encrypts tokens before they reach the sessions table.
type Sealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

var sessionColumns = []string{
	"id", "access_token", "refresh_token", "user_id", "role", "expires_at", "created_at", "updated_at",
}

type SessionStore struct {
	db     DBTX
	sealer Sealer
	logger *slog.Logger
}

func NewSessionStore(db DBTX, sealer Sealer, logger *slog.Logger) *SessionStore {
	return &SessionStore{db: db, sealer: sealer, logger: logger}
}

func (s *SessionStore) Create(ctx context.Context, sess *session.Session) error {
	access, refresh, err := s.seal(sess)
	if err != nil {
		return err
	}

	query, args, err := psql.Insert("sessions").
		Columns(sessionColumns...).
		Values(
			sess.ID(), access, refresh, sess.UserID(), sess.Role().String(),
			sess.ExpiresAt(), sess.CreatedAt(), sess.UpdatedAt(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build session insert", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "session already exists", err)
		}
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to create session", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	query, args, err := psql.Select(sessionColumns...).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build session query", err)
	}

	var (
		sid                     uuid.UUID
		access, refresh, role   string
		userID                  int64
		expiresAt, created, upd pgtype.Timestamptz
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(&sid, &access, &refresh, &userID, &role, &expiresAt, &created, &upd)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "session not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load session", err)
	}

	plainAccess, err := s.sealer.Open(access)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to unseal access token", err)
	}
	plainRefresh := ""
	if refresh != "" {
		if plainRefresh, err = s.sealer.Open(refresh); err != nil {
			return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to unseal refresh token", err)
		}
	}

	return session.Reconstruct(
		sid, plainAccess, plainRefresh, userID, user.Role(role),
		pgconv.TimeFromPgtype(expiresAt), pgconv.TimeFromPgtype(created), pgconv.TimeFromPgtype(upd),
	), nil
}

// UpdateTokens persists rotated tokens.
func (s *SessionStore) UpdateTokens(ctx context.Context, sess *session.Session) error {
	access, refresh, err := s.seal(sess)
	if err != nil {
		return err
	}

	query, args, err := psql.Update("sessions").
		Set("access_token", access).
		Set("refresh_token", refresh).
		Set("updated_at", sess.UpdatedAt()).
		Where(squirrel.Eq{"id": sess.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build session update", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to update session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "session not found", nil)
	}
	return nil
}

// Delete removes the session together with its flows and search state.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("sessions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build session delete", err)
	}
	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to delete session", err)
	}
	return nil
}

func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Delete("sessions").Where(squirrel.LtOrEq{"expires_at": now}).ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build session purge", err)
	}
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to purge sessions", err)
	}
	return tag.RowsAffected(), nil
}

func (s *SessionStore) seal(sess *session.Session) (string, string, error) {
	access, err := s.sealer.Seal(sess.AccessToken())
	if err != nil {
		return "", "", infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to seal access token", err)
	}
	refresh := ""
	if sess.RefreshToken() != "" {
		if refresh, err = s.sealer.Seal(sess.RefreshToken()); err != nil {
			return "", "", infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to seal refresh token", err)
		}
	}
	return access, refresh, nil
}
