package repository

import (
	"context"

	"library-platform/internal/domain/book"
	"library-platform/internal/infra"
	"library-platform/internal/pkg/pgconv"
	"library-platform/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookRepository struct {
	db *pgxpool.Pool
}

func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) (uuid.UUID, error) {
	const q = `INSERT INTO books (title, author) VALUES ($1, $2) RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, q, b.Title(), b.Author()).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create book", err)
	}
	return id, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.BookRecord, error) {
	const q = `SELECT id, title, author FROM books WHERE id = $1`

	var rec commands.BookRecord
	if err := r.db.QueryRow(ctx, q, id).Scan(&rec.ID, &rec.Title, &rec.Author); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book", err)
	}
	return &rec, nil
}

func (r *BookRepository) Update(ctx context.Context, id uuid.UUID, title, author string) error {
	const q = `UPDATE books SET title = $2, author = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, title, author)
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM books WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}
