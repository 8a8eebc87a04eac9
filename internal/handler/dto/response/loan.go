package response

import (
	"time"

	"library-platform/internal/usecase/queries"
)

type LoanResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	BookID    string    `json:"bookId"`
	UserName  string    `json:"userName"`
	BookTitle string    `json:"bookTitle"`
	Date      time.Time `json:"date"`
}

func FromLoanView(v *queries.LoanView) *LoanResponse {
	return &LoanResponse{
		ID:        v.ID.String(),
		UserID:    v.UserID.String(),
		BookID:    v.BookID.String(),
		UserName:  v.UserName,
		BookTitle: v.BookTitle,
		Date:      v.Date,
	}
}

func FromLoanList(views []*queries.LoanView) []*LoanResponse {
	res := make([]*LoanResponse, len(views))
	for i, v := range views {
		res[i] = FromLoanView(v)
	}
	return res
}
