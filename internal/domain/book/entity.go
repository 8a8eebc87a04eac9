package book

import "strings"

type Book struct {
	title  string
	author string
}

func NewBook(title, author string) (*Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if author == "" {
		return nil, ErrEmptyAuthor
	}
	return &Book{title: title, author: author}, nil
}

func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
