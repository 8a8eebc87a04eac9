package readstore

import (
	"context"

	"library-platform/internal/infra"
	"library-platform/internal/pkg/pgconv"
	"library-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewReadStore struct {
	db *pgxpool.Pool
}

func NewReviewReadStore(db *pgxpool.Pool) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	const q = `
		SELECT id, user_id, book_id, user_name, book_title, rating, review_text, created_at
		FROM reviews WHERE id = $1`

	var v queries.ReviewView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.UserID, &v.BookID, &v.UserName, &v.BookTitle, &v.Rating, &v.ReviewText, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review", err)
	}
	return &v, nil
}

func (r *ReviewReadStore) FindAll(ctx context.Context, bookID *uuid.UUID) ([]*queries.ReviewView, error) {
	const q = `
		SELECT id, user_id, book_id, user_name, book_title, rating, review_text, created_at
		FROM reviews
		WHERE $1::uuid IS NULL OR book_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, bookID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	defer rows.Close()

	views := []*queries.ReviewView{}
	for rows.Next() {
		var v queries.ReviewView
		err := rows.Scan(&v.ID, &v.UserID, &v.BookID, &v.UserName, &v.BookTitle, &v.Rating, &v.ReviewText, &v.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return views, nil
}

func (r *ReviewReadStore) FindRatingsByBookID(ctx context.Context, bookID uuid.UUID) ([]int32, error) {
	const q = `SELECT rating FROM reviews WHERE book_id = $1`

	rows, err := r.db.Query(ctx, q, bookID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings", err)
	}
	defer rows.Close()

	ratings := []int32{}
	for rows.Next() {
		var rating int32
		if err := rows.Scan(&rating); err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating row", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rating rows", err)
	}
	return ratings, nil
}
