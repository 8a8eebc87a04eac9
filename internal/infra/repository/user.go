package repository

import (
	"context"

	"library-platform/internal/domain/user"
	"library-platform/internal/infra"
	"library-platform/internal/pkg/pgconv"
	"library-platform/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const q = `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, q, u.Name(), u.Email()).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.UserRecord, error) {
	const q = `SELECT id, name, email FROM users WHERE id = $1`

	var rec commands.UserRecord
	if err := r.db.QueryRow(ctx, q, id).Scan(&rec.ID, &rec.Name, &rec.Email); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &rec, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, name, email string) error {
	const q = `UPDATE users SET name = $2, email = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, name, email)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
