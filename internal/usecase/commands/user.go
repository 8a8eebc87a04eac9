package commands

import (
	"context"

	"library-platform/internal/domain/user"
	"library-platform/internal/infra"
	"library-platform/internal/pkg/errs"
	"library-platform/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrUserNotFoundWrite = errs.New("user not found")

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserRecord, error)
	Update(ctx context.Context, id uuid.UUID, name, email string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateUserRequest struct {
	Name  string
	Email string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type userUseCaseImpl struct {
	users UserRepository
}

func NewUserCommands(users UserRepository) UserCommands {
	return &userUseCaseImpl{users: users}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (uuid.UUID, error) {
	u, err := user.NewUser(req.Name, req.Email)
	if err != nil {
		return uuid.Nil, err
	}
	return uc.users.Create(ctx, u)
}

func (uc *userUseCaseImpl) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) error {
	rec, err := uc.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFoundWrite
		}
		return err
	}

	u, err := user.NewUser(patch.Coalesce(req.Name, rec.Name), patch.Coalesce(req.Email, rec.Email))
	if err != nil {
		return err
	}
	return uc.users.Update(ctx, id, u.Name(), u.Email())
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.users.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFoundWrite
		}
		return err
	}
	return nil
}
