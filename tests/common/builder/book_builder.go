//go:build unit

package builder

import (
	dombook "library-platform/internal/domain/book"
	reqdto "library-platform/internal/handler/dto/request"
	"library-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookBuilder struct {
	Title  string
	Author string
}

func NewBookBuilder() *BookBuilder {
	return &BookBuilder{
		Title:  "The Go Programming Language",
		Author: "Alan A. A. Donovan",
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookBuilder) BuildDomain() (*dombook.Book, error) {
	return dombook.NewBook(b.Title, b.Author)
}

func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:  b.Title,
		Author: b.Author,
	}
}

func (b *BookBuilder) BuildViewQuery() *queries.BookView {
	return &queries.BookView{
		ID:     uuid.New(),
		Title:  b.Title,
		Author: b.Author,
	}
}
