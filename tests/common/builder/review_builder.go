//go:build unit

package builder

import (
	"time"

	domreview "library-platform/internal/domain/review"
	reqdto "library-platform/internal/handler/dto/request"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	UserID     uuid.UUID
	BookID     uuid.UUID
	UserName   string
	BookTitle  string
	Rating     int
	ReviewText string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:     uuid.New(),
		BookID:     uuid.New(),
		UserName:   "Alice Johnson",
		BookTitle:  "The Go Programming Language",
		Rating:     5,
		ReviewText: "Excellent book!",
		CreatedAt:  time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.UserID, r.BookID, r.UserName, r.BookTitle, rating, r.ReviewText, r.CreatedAt), nil
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		UserID:     r.UserID,
		BookID:     r.BookID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	text := r.ReviewText
	return reqdto.UpdateReviewRequest{
		Rating:     &rating,
		ReviewText: &text,
	}
}

func (r *ReviewBuilder) BuildRecord() *commands.ReviewRecord {
	return &commands.ReviewRecord{
		ID:     uuid.New(),
		UserID: r.UserID,
		BookID: r.BookID,
		Rating: r.Rating,
		Text:   r.ReviewText,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:         uuid.New(),
		UserID:     r.UserID,
		BookID:     r.BookID,
		UserName:   r.UserName,
		BookTitle:  r.BookTitle,
		Rating:     int32(r.Rating),
		ReviewText: r.ReviewText,
		CreatedAt:  r.CreatedAt,
	}
}
