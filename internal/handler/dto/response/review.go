package response

import (
	"time"

	"library-platform/internal/usecase/queries"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	BookID     string    `json:"bookId"`
	UserName   string    `json:"userName"`
	BookTitle  string    `json:"bookTitle"`
	Rating     int32     `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:         v.ID.String(),
		UserID:     v.UserID.String(),
		BookID:     v.BookID.String(),
		UserName:   v.UserName,
		BookTitle:  v.BookTitle,
		Rating:     v.Rating,
		ReviewText: v.ReviewText,
		CreatedAt:  v.CreatedAt,
	}
}

func FromReviewList(views []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(views))
	for i, v := range views {
		res[i] = FromReviewView(v)
	}
	return res
}

type BookRatingStatsResponse struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int32   `json:"totalReviews"`
}

func FromBookRatingStats(s *queries.BookRatingStats) *BookRatingStatsResponse {
	return &BookRatingStatsResponse{
		AverageRating: s.AverageRating,
		TotalReviews:  s.TotalReviews,
	}
}
