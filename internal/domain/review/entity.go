package review

import (
	"time"

	"github.com/google/uuid"
)

// Review follows the same soft-reference + snapshot shape as a loan. A user
// may review the same book any number of times.
type Review struct {
	userID    uuid.UUID
	bookID    uuid.UUID
	userName  string
	bookTitle string
	rating    Rating
	text      string
	createdAt time.Time
}

func NewReview(userID, bookID uuid.UUID, userName, bookTitle string, rating Rating, text string, now time.Time) *Review {
	return &Review{
		userID:    userID,
		bookID:    bookID,
		userName:  userName,
		bookTitle: bookTitle,
		rating:    rating,
		text:      text,
		createdAt: now,
	}
}

func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) BookID() uuid.UUID    { return r.bookID }
func (r *Review) UserName() string     { return r.userName }
func (r *Review) BookTitle() string    { return r.bookTitle }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Text() string         { return r.text }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
