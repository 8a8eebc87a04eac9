package user

import "strings"

// User is the single resource the user service owns. The identifier is
// store-assigned, so the entity only carries the writable fields.
type User struct {
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}
	return &User{name: name, email: email}, nil
}

func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }
