package readstore

import (
	"context"

	"library-platform/internal/infra"
	"library-platform/internal/pkg/pgconv"
	"library-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookReadStore struct {
	db *pgxpool.Pool
}

func NewBookReadStore(db *pgxpool.Pool) *BookReadStore {
	return &BookReadStore{db: db}
}

func (r *BookReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	const q = `SELECT id, title, author FROM books WHERE id = $1`

	var v queries.BookView
	if err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Title, &v.Author); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get book", err)
	}
	return &v, nil
}

func (r *BookReadStore) FindAll(ctx context.Context) ([]*queries.BookView, error) {
	const q = `SELECT id, title, author FROM books`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	views := []*queries.BookView{}
	for rows.Next() {
		var v queries.BookView
		if err := rows.Scan(&v.ID, &v.Title, &v.Author); err != nil {
			return nil, infra.WrapRepoErr("failed to scan book row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read book rows", err)
	}
	return views, nil
}
