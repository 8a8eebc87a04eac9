package request

import "library-platform/internal/usecase/commands"

type CreateBookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
}

type UpdateBookRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
}

func (r *CreateBookRequest) ToCommand() commands.CreateBookRequest {
	return commands.CreateBookRequest{Title: r.Title, Author: r.Author}
}

func (r *UpdateBookRequest) ToCommand() commands.UpdateBookRequest {
	return commands.UpdateBookRequest{Title: r.Title, Author: r.Author}
}
