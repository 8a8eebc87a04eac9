package repository

import (
	"context"

	"library-platform/internal/domain/loan"
	"library-platform/internal/infra"
	"library-platform/internal/pkg/pgconv"
	"library-platform/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoanRepository struct {
	db *pgxpool.Pool
}

func NewLoanRepository(db *pgxpool.Pool) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error) {
	const q = `
		INSERT INTO loans (user_id, book_id, user_name, book_title, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q, l.UserID(), l.BookID(), l.UserName(), l.BookTitle(), l.Date()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create loan", err)
	}
	return id, nil
}

// FindByBookID backs the uniqueness check: a book is on loan exactly when a
// row for its bookId exists. book_id carries a plain (non-unique) index;
// nothing at the storage level closes the check-then-insert window.
func (r *LoanRepository) FindByBookID(ctx context.Context, bookID uuid.UUID) (*commands.LoanRecord, error) {
	const q = `SELECT id, user_id, book_id FROM loans WHERE book_id = $1 LIMIT 1`

	var rec commands.LoanRecord
	if err := r.db.QueryRow(ctx, q, bookID).Scan(&rec.ID, &rec.UserID, &rec.BookID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no loan for book", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find loan by book", err)
	}
	return &rec, nil
}

func (r *LoanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM loans WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete loan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("loan not found", nil, infra.KindNotFound)
	}
	return nil
}
