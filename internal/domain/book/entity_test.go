//go:build unit

package book_test

import (
	"testing"

	"library-platform/internal/domain/book"
	"library-platform/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookBuilder)
	errIs  error
}

func TestBook(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "The Go Programming Language", actual.Title())
		assert.Equal(t, "Alan A. A. Donovan", actual.Author())
	})

	t.Run("title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.BookBuilder) { b.Title = "" },
				errIs:  book.ErrEmptyTitle,
			},
			{
				name:   "whitespace only title",
				mutate: func(b *builder.BookBuilder) { b.Title = "   " },
				errIs:  book.ErrEmptyTitle,
			},
		})
	})

	t.Run("author validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty author",
				mutate: func(b *builder.BookBuilder) { b.Author = "" },
				errIs:  book.ErrEmptyAuthor,
			},
		})
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		actual, err := book.NewBook("  Clean Code  ", " Robert C. Martin ")
		require.NoError(t, err)

		assert.Equal(t, "Clean Code", actual.Title())
		assert.Equal(t, "Robert C. Martin", actual.Author())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookBuilder().With(c.mutate).BuildDomain()

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
