package commands

import (
	"context"
	"log/slog"

	"library-platform/internal/domain/loan"
	"library-platform/internal/infra"
	"library-platform/internal/pkg/clock"
	"library-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookAlreadyLoaned = errs.New("book is already on loan")
	ErrLoanNotFound      = errs.New("loan not found")
)

type LoanRepository interface {
	Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error)
	FindByBookID(ctx context.Context, bookID uuid.UUID) (*LoanRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateLoanRequest struct {
	UserID uuid.UUID
	BookID uuid.UUID
}

type CreateLoanResult struct {
	LoanID uuid.UUID
}

type LoanCommands interface {
	CreateLoan(ctx context.Context, req CreateLoanRequest) (*CreateLoanResult, error)
	ReturnLoan(ctx context.Context, id uuid.UUID) error
}

type loanUseCaseImpl struct {
	loans  LoanRepository
	users  UserSource
	books  BookSource
	clock  clock.Clock
	logger *slog.Logger
}

func NewLoanCommands(loans LoanRepository, users UserSource, books BookSource, clk clock.Clock, logger *slog.Logger) LoanCommands {
	return &loanUseCaseImpl{loans: loans, users: users, books: books, clock: clk, logger: logger}
}

// CreateLoan validates the two soft references sequentially (user, then
// book), checks the local uniqueness rule and persists a denormalized loan
// record. The steps are not wrapped in a cross-store transaction: two
// concurrent calls for the same book can both pass the uniqueness check, and
// store-arrival order decides which one lands first.
func (uc *loanUseCaseImpl) CreateLoan(ctx context.Context, req CreateLoanRequest) (*CreateLoanResult, error) {
	userSnap, err := uc.users.FetchUser(ctx, req.UserID)
	if err != nil {
		return nil, foldReferenceFailure(ctx, uc.logger, "user", req.UserID, err)
	}

	bookSnap, err := uc.books.FetchBook(ctx, req.BookID)
	if err != nil {
		return nil, foldReferenceFailure(ctx, uc.logger, "book", req.BookID, err)
	}

	existing, err := uc.loans.FindByBookID(ctx, req.BookID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBookAlreadyLoaned
	}

	l := loan.NewLoan(req.UserID, req.BookID, userSnap.Display, bookSnap.Display, uc.clock.Now())
	id, err := uc.loans.Create(ctx, l)
	if err != nil {
		return nil, err
	}
	return &CreateLoanResult{LoanID: id}, nil
}

// ReturnLoan hard-deletes the loan; the book becomes lendable again purely
// by the absence of a row for its bookId. Returning twice fails the second
// time with not-found.
func (uc *loanUseCaseImpl) ReturnLoan(ctx context.Context, id uuid.UUID) error {
	if err := uc.loans.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrLoanNotFound
		}
		return err
	}
	return nil
}
