package commands

import (
	"context"

	"library-platform/internal/domain/book"
	"library-platform/internal/infra"
	"library-platform/internal/pkg/errs"
	"library-platform/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrBookNotFoundWrite = errs.New("book not found")

type BookRepository interface {
	Create(ctx context.Context, b *book.Book) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookRecord, error)
	Update(ctx context.Context, id uuid.UUID, title, author string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateBookRequest struct {
	Title  string
	Author string
}

type UpdateBookRequest struct {
	Title  *string
	Author *string
}

type BookCommands interface {
	Create(ctx context.Context, req CreateBookRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookUseCaseImpl struct {
	books BookRepository
}

func NewBookCommands(books BookRepository) BookCommands {
	return &bookUseCaseImpl{books: books}
}

func (uc *bookUseCaseImpl) Create(ctx context.Context, req CreateBookRequest) (uuid.UUID, error) {
	b, err := book.NewBook(req.Title, req.Author)
	if err != nil {
		return uuid.Nil, err
	}
	return uc.books.Create(ctx, b)
}

func (uc *bookUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateBookRequest) error {
	rec, err := uc.books.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookNotFoundWrite
		}
		return err
	}

	b, err := book.NewBook(patch.Coalesce(req.Title, rec.Title), patch.Coalesce(req.Author, rec.Author))
	if err != nil {
		return err
	}
	return uc.books.Update(ctx, id, b.Title(), b.Author())
}

func (uc *bookUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.books.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookNotFoundWrite
		}
		return err
	}
	return nil
}
