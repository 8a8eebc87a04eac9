//go:build unit

package builder

import (
	"time"

	domloan "library-platform/internal/domain/loan"
	reqdto "library-platform/internal/handler/dto/request"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type LoanBuilder struct {
	UserID    uuid.UUID
	BookID    uuid.UUID
	UserName  string
	BookTitle string
	Date      time.Time
}

func NewLoanBuilder() *LoanBuilder {
	return &LoanBuilder{
		UserID:    uuid.New(),
		BookID:    uuid.New(),
		UserName:  "Alice Johnson",
		BookTitle: "The Go Programming Language",
		Date:      time.Now(),
	}
}

func (l *LoanBuilder) With(mutate func(*LoanBuilder)) *LoanBuilder {
	mutate(l)
	return l
}

// Build methods
func (l *LoanBuilder) BuildDomain() *domloan.Loan {
	return domloan.NewLoan(l.UserID, l.BookID, l.UserName, l.BookTitle, l.Date)
}

func (l *LoanBuilder) BuildCreateRequestDTO() reqdto.CreateLoanRequest {
	return reqdto.CreateLoanRequest{
		UserID: l.UserID,
		BookID: l.BookID,
	}
}

func (l *LoanBuilder) BuildRecord() *commands.LoanRecord {
	return &commands.LoanRecord{
		ID:     uuid.New(),
		UserID: l.UserID,
		BookID: l.BookID,
	}
}

func (l *LoanBuilder) BuildViewQuery() *queries.LoanView {
	return &queries.LoanView{
		ID:        uuid.New(),
		UserID:    l.UserID,
		BookID:    l.BookID,
		UserName:  l.UserName,
		BookTitle: l.BookTitle,
		Date:      l.Date,
	}
}
