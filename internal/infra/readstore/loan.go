package readstore

import (
	"context"

	"library-platform/internal/infra"
	"library-platform/internal/pkg/pgconv"
	"library-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoanReadStore struct {
	db *pgxpool.Pool
}

func NewLoanReadStore(db *pgxpool.Pool) *LoanReadStore {
	return &LoanReadStore{db: db}
}

func (r *LoanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LoanView, error) {
	const q = `SELECT id, user_id, book_id, user_name, book_title, date FROM loans WHERE id = $1`

	var v queries.LoanView
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.UserID, &v.BookID, &v.UserName, &v.BookTitle, &v.Date)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("loan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get loan", err)
	}
	return &v, nil
}

func (r *LoanReadStore) FindAll(ctx context.Context) ([]*queries.LoanView, error) {
	const q = `SELECT id, user_id, book_id, user_name, book_title, date FROM loans ORDER BY date DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list loans", err)
	}
	defer rows.Close()

	views := []*queries.LoanView{}
	for rows.Next() {
		var v queries.LoanView
		if err := rows.Scan(&v.ID, &v.UserID, &v.BookID, &v.UserName, &v.BookTitle, &v.Date); err != nil {
			return nil, infra.WrapRepoErr("failed to scan loan row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read loan rows", err)
	}
	return views, nil
}
