package queries

import (
	"context"
	"math"
	"time"

	"library-platform/internal/infra"
	"library-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewView struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BookID     uuid.UUID
	UserName   string
	BookTitle  string
	Rating     int32
	ReviewText string
	CreatedAt  time.Time
}

type BookRatingStats struct {
	AverageRating float64
	TotalReviews  int32
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindAll(ctx context.Context, bookID *uuid.UUID) ([]*ReviewView, error)
	FindRatingsByBookID(ctx context.Context, bookID uuid.UUID) ([]int32, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	List(ctx context.Context, bookID *uuid.UUID) ([]*ReviewView, error)
	GetBookRatingStats(ctx context.Context, bookID uuid.UUID) (*BookRatingStats, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *reviewQueriesImpl) List(ctx context.Context, bookID *uuid.UUID) ([]*ReviewView, error) {
	return q.store.FindAll(ctx, bookID)
}

func (q *reviewQueriesImpl) GetBookRatingStats(ctx context.Context, bookID uuid.UUID) (*BookRatingStats, error) {
	ratings, err := q.store.FindRatingsByBookID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	stats := AggregateRatings(ratings)
	return &stats, nil
}

// AggregateRatings reduces the already-fetched rating set to the stats the
// API exposes. The mean is rounded to one decimal; no reviews yields {0, 0}.
func AggregateRatings(ratings []int32) BookRatingStats {
	if len(ratings) == 0 {
		return BookRatingStats{}
	}
	var sum int64
	for _, r := range ratings {
		sum += int64(r)
	}
	avg := float64(sum) / float64(len(ratings))
	return BookRatingStats{
		AverageRating: math.Round(avg*10) / 10,
		TotalReviews:  int32(len(ratings)),
	}
}
