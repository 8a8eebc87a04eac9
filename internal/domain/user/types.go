package user

import "errors"

var (
	ErrEmptyName  = errors.New("name cannot be empty")
	ErrEmptyEmail = errors.New("email cannot be empty")
)
