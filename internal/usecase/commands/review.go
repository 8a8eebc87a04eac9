package commands

import (
	"context"
	"log/slog"

	"library-platform/internal/domain/review"
	"library-platform/internal/infra"
	"library-platform/internal/pkg/clock"
	"library-platform/internal/pkg/errs"
	"library-platform/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewRecord, error)
	Update(ctx context.Context, id uuid.UUID, rating int, text string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateReviewRequest struct {
	UserID     uuid.UUID
	BookID     uuid.UUID
	Rating     int
	ReviewText string
}

type UpdateReviewRequest struct {
	Rating     *int
	ReviewText *string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, id uuid.UUID, req UpdateReviewRequest) error
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

type reviewUseCaseImpl struct {
	reviews ReviewRepository
	users   UserSource
	books   BookSource
	clock   clock.Clock
	logger  *slog.Logger
}

func NewReviewCommands(reviews ReviewRepository, users UserSource, books BookSource, clk clock.Clock, logger *slog.Logger) ReviewCommands {
	return &reviewUseCaseImpl{reviews: reviews, users: users, books: books, clock: clk, logger: logger}
}

// CreateReview runs the cheap local check first: an out-of-range rating must
// fail before any remote call goes out. Reference validation then follows
// the loan pattern, user before book, with the same failure folding.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest) (*CreateReviewResult, error) {
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return nil, err
	}

	userSnap, err := uc.users.FetchUser(ctx, req.UserID)
	if err != nil {
		return nil, foldReferenceFailure(ctx, uc.logger, "user", req.UserID, err)
	}

	bookSnap, err := uc.books.FetchBook(ctx, req.BookID)
	if err != nil {
		return nil, foldReferenceFailure(ctx, uc.logger, "book", req.BookID, err)
	}

	r := review.NewReview(req.UserID, req.BookID, userSnap.Display, bookSnap.Display, rating, req.ReviewText, uc.clock.Now())
	id, err := uc.reviews.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: id}, nil
}

// UpdateReview patches rating and/or text; omitted fields keep their stored
// values. A present rating is revalidated with the same range rule as on
// creation. The snapshots are never touched.
func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, id uuid.UUID, req UpdateReviewRequest) error {
	rec, err := uc.reviews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	rating, err := review.NewRating(patch.Coalesce(req.Rating, rec.Rating))
	if err != nil {
		return err
	}
	text := patch.Coalesce(req.ReviewText, rec.Text)

	return uc.reviews.Update(ctx, id, rating.Value(), text)
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, id uuid.UUID) error {
	if err := uc.reviews.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}
