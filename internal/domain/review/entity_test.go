//go:build unit

package review_test

import (
	"testing"
	"time"

	"library-platform/internal/domain/review"
	"library-platform/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, b.UserID, actual.UserID())
		assert.Equal(t, b.BookID, actual.BookID())
		assert.Equal(t, "Alice Johnson", actual.UserName())
		assert.Equal(t, "The Go Programming Language", actual.BookTitle())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Excellent book!", actual.Text())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 0 },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 1 },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 5 },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = 6 },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.Rating = -1 },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("empty review text is allowed", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().
			With(func(b *builder.ReviewBuilder) { b.ReviewText = "" }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "", actual.Text())
	})

	t.Run("snapshots are captured verbatim", func(t *testing.T) {
		rating, err := review.NewRating(3)
		require.NoError(t, err)

		now := time.Now()
		r := review.NewReview(uuid.New(), uuid.New(), "Bob", "Clean Code", rating, "fine", now)

		assert.Equal(t, "Bob", r.UserName())
		assert.Equal(t, "Clean Code", r.BookTitle())
		assert.Equal(t, now, r.CreatedAt())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
