package queries

import (
	"context"
	"time"

	"library-platform/internal/infra"
	"library-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrLoanNotFound = errs.New("loan not found")

// LoanView carries the soft references plus the snapshots captured when the
// loan was created. Staleness against the user and book services is accepted.
type LoanView struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	BookID    uuid.UUID
	UserName  string
	BookTitle string
	Date      time.Time
}

type LoanReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	FindAll(ctx context.Context) ([]*LoanView, error)
}

type LoanQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LoanView, error)
	List(ctx context.Context) ([]*LoanView, error)
}

type loanQueriesImpl struct {
	store LoanReadStore
}

func NewLoanQueries(store LoanReadStore) LoanQueries {
	return &loanQueriesImpl{store: store}
}

func (q *loanQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LoanView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLoanNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *loanQueriesImpl) List(ctx context.Context) ([]*LoanView, error) {
	return q.store.FindAll(ctx)
}
