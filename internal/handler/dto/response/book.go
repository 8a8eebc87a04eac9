package response

import "library-platform/internal/usecase/queries"

type BookResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

func FromBookView(v *queries.BookView) *BookResponse {
	return &BookResponse{
		ID:     v.ID.String(),
		Title:  v.Title,
		Author: v.Author,
	}
}

func FromBookList(views []*queries.BookView) []*BookResponse {
	res := make([]*BookResponse, len(views))
	for i, v := range views {
		res[i] = FromBookView(v)
	}
	return res
}
