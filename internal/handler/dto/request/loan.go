package request

import (
	"library-platform/internal/usecase/commands"

	"github.com/google/uuid"
)

// Identifiers bind as UUIDs so a malformed id fails locally with a 400
// before any remote lookup happens.
type CreateLoanRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	BookID uuid.UUID `json:"bookId" binding:"required"`
}

func (r *CreateLoanRequest) ToCommand() commands.CreateLoanRequest {
	return commands.CreateLoanRequest{UserID: r.UserID, BookID: r.BookID}
}
