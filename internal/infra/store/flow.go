package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"booking-gateway/internal/domain/booking"
	"booking-gateway/internal/infra"
	"booking-gateway/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// FlowStore persists booking flows as JSON snapshots guarded by a version column. Every
// write must present the version it read; a mismatch means another request got there first.
type FlowStore struct {
	db     DBTX
	ttl    time.Duration
	logger *slog.Logger
}

func NewFlowStore(db DBTX, ttl time.Duration, logger *slog.Logger) *FlowStore {
	return &FlowStore{db: db, ttl: ttl, logger: logger}
}

func (s *FlowStore) Create(ctx context.Context, f *booking.Flow) error {
	state, err := json.Marshal(f.Snapshot())
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to encode flow", err)
	}

	query, args, err := psql.Insert("booking_flows").
		Columns("id", "session_id", "state", "version", "expires_at", "created_at", "updated_at").
		Values(f.ID(), f.SessionID(), state, f.Version(), f.UpdatedAt().Add(s.ttl), f.CreatedAt(), f.UpdatedAt()).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build flow insert", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		switch {
		case pgconv.IsUniqueViolation(err):
			return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "flow already exists", err)
		case pgconv.IsForeignKeyViolation(err):
			return infra.WrapRepoErr(s.logger, infra.KindNotFound, "session not found", err)
		}
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to create flow", err)
	}
	return nil
}

// Get loads a live flow owned by sessionID. Flows of other sessions are reported as missing.
func (s *FlowStore) Get(ctx context.Context, id, sessionID uuid.UUID, now time.Time) (*booking.Flow, error) {
	query, args, err := psql.Select("state", "version").
		From("booking_flows").
		Where(squirrel.Eq{"id": id, "session_id": sessionID}).
		Where(squirrel.Gt{"expires_at": now}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build flow query", err)
	}

	var (
		raw     []byte
		version int
	)
	if err := s.db.QueryRow(ctx, query, args...).Scan(&raw, &version); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "flow not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load flow", err)
	}

	var snap booking.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to decode flow", err)
	}
	snap.Version = version

	f, err := booking.Reconstruct(snap)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "stored flow is invalid", err)
	}
	return f, nil
}

// Update writes next if the stored version still equals next.Version() and returns the flow
// carrying the new version.
func (s *FlowStore) Update(ctx context.Context, next *booking.Flow) (*booking.Flow, error) {
	snap := next.Snapshot()
	snap.Version = next.Version() + 1
	state, err := json.Marshal(snap)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to encode flow", err)
	}

	query, args, err := psql.Update("booking_flows").
		Set("state", state).
		Set("version", snap.Version).
		Set("updated_at", next.UpdatedAt()).
		Set("expires_at", next.UpdatedAt().Add(s.ttl)).
		Where(squirrel.Eq{"id": next.ID(), "session_id": next.SessionID(), "version": next.Version()}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build flow update", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to update flow", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, infra.WrapRepoErr(s.logger, infra.KindConflict, "flow was modified concurrently", nil)
	}

	return booking.Reconstruct(snap)
}

func (s *FlowStore) Delete(ctx context.Context, id, sessionID uuid.UUID) error {
	query, args, err := psql.Delete("booking_flows").
		Where(squirrel.Eq{"id": id, "session_id": sessionID}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build flow delete", err)
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to delete flow", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "flow not found", nil)
	}
	return nil
}

func (s *FlowStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Delete("booking_flows").Where(squirrel.LtOrEq{"expires_at": now}).ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build flow purge", err)
	}
	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to purge flows", err)
	}
	return tag.RowsAffected(), nil
}
