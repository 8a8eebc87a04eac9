//go:build unit

package user_test

import (
	"testing"

	"library-platform/internal/domain/user"
	"library-platform/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Alice Johnson", actual.Name())
		assert.Equal(t, "alice@example.com", actual.Email())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid name",
				mutate: func(b *builder.UserBuilder) { b.Name = "Bob" },
			},
			{
				name:   "empty name",
				mutate: func(b *builder.UserBuilder) { b.Name = "" },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.UserBuilder) { b.Name = "   " },
				errIs:  user.ErrEmptyName,
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.Email = "" },
				errIs:  user.ErrEmptyEmail,
			},
			{
				name:   "whitespace only email",
				mutate: func(b *builder.UserBuilder) { b.Email = "  " },
				errIs:  user.ErrEmptyEmail,
			},
		})
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		actual, err := user.NewUser("  Carol  ", " carol@example.com ")
		require.NoError(t, err)

		assert.Equal(t, "Carol", actual.Name())
		assert.Equal(t, "carol@example.com", actual.Email())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
