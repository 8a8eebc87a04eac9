//go:build unit

package builder

import (
	domuser "library-platform/internal/domain/user"
	reqdto "library-platform/internal/handler/dto/request"
	"library-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*domuser.User, error) {
	return domuser.NewUser(u.Name, u.Email)
}

func (u *UserBuilder) BuildCreateRequestDTO() reqdto.CreateUserRequest {
	return reqdto.CreateUserRequest{
		Name:  u.Name,
		Email: u.Email,
	}
}

func (u *UserBuilder) BuildViewQuery() *queries.UserView {
	return &queries.UserView{
		ID:    uuid.New(),
		Name:  u.Name,
		Email: u.Email,
	}
}
