//go:build unit

package pgconv

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("wrapped: %w", pgx.ErrNoRows)))

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})
	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	assert.True(t, IsForeignKeyViolation(fk))
}

func TestConversions(t *testing.T) {
	assert.False(t, TimeToPgtype(time.Time{}).Valid)
	now := time.Date(2025, 3, 1, 7, 0, 0, 0, time.FixedZone("x", -5*3600))
	assert.Equal(t, now.UTC(), TimeFromPgtype(TimeToPgtype(now)))
	assert.Equal(t, time.Time{}, TimeFromPgtype(pgtype.Timestamptz{}))

	assert.False(t, TextToPgtype("").Valid)
	assert.Equal(t, "Lima", TextFromPgtype(TextToPgtype("Lima")))
}
