package store

import (
	"context"
	"log/slog"
	"time"

	"booking-gateway/internal/domain/search"
	"booking-gateway/internal/infra"
	"booking-gateway/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SearchStateStore struct {
	db     DBTX
	logger *slog.Logger
}

func NewSearchStateStore(db DBTX, logger *slog.Logger) *SearchStateStore {
	return &SearchStateStore{db: db, logger: logger}
}

// Get returns the stored state, or ok=false when the session has not searched yet.
func (s *SearchStateStore) Get(ctx context.Context, sessionID uuid.UUID) (search.State, bool, error) {
	query, args, err := psql.Select("text", "city", "country", "page", "page_size").
		From("search_states").
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return search.State{}, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build search state query", err)
	}

	var (
		text, city, country pgtype.Text
		state               search.State
	)
	err = s.db.QueryRow(ctx, query, args...).Scan(&text, &city, &country, &state.Page, &state.PageSize)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return search.State{}, false, nil
		}
		return search.State{}, false, infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to load search state", err)
	}

	state.Filters = search.Filters{
		Text:    pgconv.TextFromPgtype(text),
		City:    pgconv.TextFromPgtype(city),
		Country: pgconv.TextFromPgtype(country),
	}
	return state, true, nil
}

func (s *SearchStateStore) Save(ctx context.Context, sessionID uuid.UUID, state search.State, now time.Time) error {
	query, args, err := psql.Insert("search_states").
		Columns("session_id", "text", "city", "country", "page", "page_size", "updated_at").
		Values(
			sessionID,
			pgconv.TextToPgtype(state.Filters.Text),
			pgconv.TextToPgtype(state.Filters.City),
			pgconv.TextToPgtype(state.Filters.Country),
			state.Page,
			state.PageSize,
			now,
		).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET " +
			"text = EXCLUDED.text, city = EXCLUDED.city, country = EXCLUDED.country, " +
			"page = EXCLUDED.page, page_size = EXCLUDED.page_size, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to build search state upsert", err)
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr(s.logger, infra.KindNotFound, "session not found", err)
		}
		return infra.WrapRepoErr(s.logger, infra.KindDBFailure, "failed to save search state", err)
	}
	return nil
}
