//go:build unit

package queries_test

import (
	"context"
	"testing"

	"library-platform/internal/usecase/queries"
	queriesmock "library-platform/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAggregateRatings(t *testing.T) {
	cases := []struct {
		name     string
		ratings  []int32
		expected queries.BookRatingStats
	}{
		{
			name:     "no reviews yields zero stats",
			ratings:  nil,
			expected: queries.BookRatingStats{AverageRating: 0, TotalReviews: 0},
		},
		{
			name:     "single review",
			ratings:  []int32{3},
			expected: queries.BookRatingStats{AverageRating: 3, TotalReviews: 1},
		},
		{
			name:     "mean is rounded to one decimal",
			ratings:  []int32{5, 4, 5},
			expected: queries.BookRatingStats{AverageRating: 4.7, TotalReviews: 3},
		},
		{
			name:     "exact mean stays exact",
			ratings:  []int32{4, 2},
			expected: queries.BookRatingStats{AverageRating: 3, TotalReviews: 2},
		},
		{
			name:     "rounding down",
			ratings:  []int32{1, 1, 2},
			expected: queries.BookRatingStats{AverageRating: 1.3, TotalReviews: 3},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, queries.AggregateRatings(c.ratings))
		})
	}
}

func TestGetBookRatingStats(t *testing.T) {
	ctx := context.Background()
	bookID := uuid.New()

	t.Run("aggregates the stored ratings for the book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		q := queries.NewReviewQueries(store)

		store.EXPECT().FindRatingsByBookID(gomock.Any(), bookID).
			Return([]int32{5, 4, 5}, nil)

		stats, err := q.GetBookRatingStats(ctx, bookID)
		require.NoError(t, err)
		assert.Equal(t, &queries.BookRatingStats{AverageRating: 4.7, TotalReviews: 3}, stats)
	})

	t.Run("unknown book yields zero stats, not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReviewReadStore(ctrl)
		q := queries.NewReviewQueries(store)

		store.EXPECT().FindRatingsByBookID(gomock.Any(), bookID).
			Return(nil, nil)

		stats, err := q.GetBookRatingStats(ctx, bookID)
		require.NoError(t, err)
		assert.Equal(t, &queries.BookRatingStats{AverageRating: 0, TotalReviews: 0}, stats)
	})
}
