package book

import "errors"

var (
	ErrEmptyTitle  = errors.New("title cannot be empty")
	ErrEmptyAuthor = errors.New("author cannot be empty")
)
