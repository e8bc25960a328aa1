//go:build unit

package user_test

import (
	"testing"

	"booking-gateway/internal/domain/user"
	"booking-gateway/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("reconstruct customer", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(7), actual.ID())
		assert.True(t, actual.IsCustomer())
		assert.False(t, actual.IsBusiness())
		assert.Equal(t, "Ana Ruiz", actual.FullName())
		assert.Nil(t, actual.BusinessID())
	})

	t.Run("reconstruct business", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsBusiness().BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.IsBusiness())
		require.NotNil(t, actual.BusinessID())
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "business ok", mutate: func(b *builder.UserBuilder) { b.Role = "business" }},
			{name: "case insensitive ok", mutate: func(b *builder.UserBuilder) { b.Role = " Customer " }},
			{name: "empty ng", mutate: func(b *builder.UserBuilder) { b.Role = "" }, errIs: user.ErrInvalidRole},
			{name: "admin ng", mutate: func(b *builder.UserBuilder) { b.Role = "admin" }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("full name with missing parts", func(t *testing.T) {
		only := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.LastName = "" }).MustBuild()
		assert.Equal(t, "Ana", only.FullName())
	})
}

func TestValueObjects(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		e, err := user.NewEmail("  Someone@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "someone@example.com", e.Value())

		for _, bad := range []string{"", "invalid-email", "invalidemail.com", "a@b"} {
			_, err := user.NewEmail(bad)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, bad)
		}
	})

	t.Run("password", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

		_, err = user.NewConfirmedPassword("12345678", "12345679")
		assert.ErrorIs(t, err, user.ErrPasswordMismatch)
	})

	t.Run("name", func(t *testing.T) {
		_, err := user.NewName("   ")
		assert.ErrorIs(t, err, user.ErrEmptyName)

		long := make([]byte, user.MaxNameLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err = user.NewName(string(long))
		assert.ErrorIs(t, err, user.ErrNameTooLong)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder().With(tc.mutate)
			_, err := b.BuildDomain()

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
