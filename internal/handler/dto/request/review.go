package request

import (
	"library-platform/internal/usecase/commands"

	"github.com/google/uuid"
)

// Rating carries no binding constraint on purpose: the range rule lives in
// the domain so the request fails with the documented message, and it must
// run before any remote validation.
type CreateReviewRequest struct {
	UserID     uuid.UUID `json:"userId" binding:"required"`
	BookID     uuid.UUID `json:"bookId" binding:"required"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
}

type UpdateReviewRequest struct {
	Rating     *int    `json:"rating"`
	ReviewText *string `json:"reviewText"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		UserID:     r.UserID,
		BookID:     r.BookID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
	}
}

func (r *UpdateReviewRequest) ToCommand() commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{Rating: r.Rating, ReviewText: r.ReviewText}
}
