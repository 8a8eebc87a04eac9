package repository

import (
	"context"

	"library-platform/internal/domain/review"
	"library-platform/internal/infra"
	"library-platform/internal/pkg/pgconv"
	"library-platform/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	const q = `
		INSERT INTO reviews (user_id, book_id, user_name, book_title, rating, review_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		rev.UserID(), rev.BookID(), rev.UserName(), rev.BookTitle(),
		int32(rev.Rating().Value()), rev.Text(), rev.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ReviewRecord, error) {
	const q = `SELECT id, user_id, book_id, rating, review_text FROM reviews WHERE id = $1`

	var rec commands.ReviewRecord
	var rating int32
	if err := r.db.QueryRow(ctx, q, id).Scan(&rec.ID, &rec.UserID, &rec.BookID, &rating, &rec.Text); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review", err)
	}
	rec.Rating = int(rating)
	return &rec, nil
}

func (r *ReviewRepository) Update(ctx context.Context, id uuid.UUID, rating int, text string) error {
	const q = `UPDATE reviews SET rating = $2, review_text = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, int32(rating), text)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM reviews WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
