package loan

import (
	"time"

	"github.com/google/uuid"
)

// Loan holds soft references to a user and a book owned by other services,
// plus display snapshots captured once at creation. The snapshots are never
// refreshed; later edits to the referenced user or book do not flow back here.
type Loan struct {
	userID    uuid.UUID
	bookID    uuid.UUID
	userName  string
	bookTitle string
	date      time.Time
}

func NewLoan(userID, bookID uuid.UUID, userName, bookTitle string, now time.Time) *Loan {
	return &Loan{
		userID:    userID,
		bookID:    bookID,
		userName:  userName,
		bookTitle: bookTitle,
		date:      now,
	}
}

func (l *Loan) UserID() uuid.UUID { return l.userID }
func (l *Loan) BookID() uuid.UUID { return l.bookID }
func (l *Loan) UserName() string  { return l.userName }
func (l *Loan) BookTitle() string { return l.bookTitle }
func (l *Loan) Date() time.Time   { return l.date }
