//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	domreview "library-platform/internal/domain/review"
	"library-platform/internal/infra"
	"library-platform/internal/infra/remote"
	"library-platform/internal/pkg/clock"
	"library-platform/internal/usecase/commands"
	commandsmock "library-platform/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reviewTestDeps struct {
	reviews *commandsmock.MockReviewRepository
	users   *commandsmock.MockUserSource
	books   *commandsmock.MockBookSource
	clk     *clock.MockClock
}

func newReviewCommands(t *testing.T) (commands.ReviewCommands, reviewTestDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := reviewTestDeps{
		reviews: commandsmock.NewMockReviewRepository(ctrl),
		users:   commandsmock.NewMockUserSource(ctrl),
		books:   commandsmock.NewMockBookSource(ctrl),
		clk:     clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := commands.NewReviewCommands(deps.reviews, deps.users, deps.books, deps.clk, logger)
	return uc, deps
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	req := commands.CreateReviewRequest{
		UserID:     uuid.New(),
		BookID:     uuid.New(),
		Rating:     4,
		ReviewText: "Solid read.",
	}

	t.Run("success: snapshots and rating reach the repository", func(t *testing.T) {
		uc, deps := newReviewCommands(t)
		reviewID := uuid.New()

		deps.users.EXPECT().FetchUser(gomock.Any(), req.UserID).
			Return(&remote.Snapshot{ID: req.UserID, Display: "Alice Johnson"}, nil)
		deps.books.EXPECT().FetchBook(gomock.Any(), req.BookID).
			Return(&remote.Snapshot{ID: req.BookID, Display: "The Go Programming Language"}, nil)

		var created *domreview.Review
		deps.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domreview.Review) (uuid.UUID, error) {
				created = r
				return reviewID, nil
			})

		result, err := uc.CreateReview(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, reviewID, result.ReviewID)

		require.NotNil(t, created)
		assert.Equal(t, "Alice Johnson", created.UserName())
		assert.Equal(t, "The Go Programming Language", created.BookTitle())
		assert.Equal(t, 4, created.Rating().Value())
		assert.Equal(t, "Solid read.", created.Text())
		assert.Equal(t, deps.clk.Now(), created.CreatedAt())
	})

	t.Run("out-of-range rating fails before any remote call", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1, 100} {
			uc, deps := newReviewCommands(t)

			deps.users.EXPECT().FetchUser(gomock.Any(), gomock.Any()).Times(0)
			deps.books.EXPECT().FetchBook(gomock.Any(), gomock.Any()).Times(0)
			deps.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			bad := req
			bad.Rating = rating
			result, err := uc.CreateReview(ctx, bad)
			assert.Nil(t, result)
			require.ErrorIs(t, err, domreview.ErrInvalidRating, "rating %d", rating)
		}
	})

	t.Run("missing user folds to reference-not-found before the book is consulted", func(t *testing.T) {
		uc, deps := newReviewCommands(t)

		deps.users.EXPECT().FetchUser(gomock.Any(), req.UserID).
			Return(nil, remote.ErrNotFound)
		deps.books.EXPECT().FetchBook(gomock.Any(), gomock.Any()).Times(0)
		deps.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		result, err := uc.CreateReview(ctx, req)
		assert.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrReferenceNotFound)
	})

	t.Run("missing book folds to reference-not-found", func(t *testing.T) {
		uc, deps := newReviewCommands(t)

		deps.users.EXPECT().FetchUser(gomock.Any(), req.UserID).
			Return(&remote.Snapshot{ID: req.UserID, Display: "Alice Johnson"}, nil)
		deps.books.EXPECT().FetchBook(gomock.Any(), req.BookID).
			Return(nil, remote.ErrNotFound)
		deps.reviews.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		result, err := uc.CreateReview(ctx, req)
		assert.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrReferenceNotFound)
	})
}

func TestUpdateReview(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	stored := &commands.ReviewRecord{
		ID:     id,
		UserID: uuid.New(),
		BookID: uuid.New(),
		Rating: 4,
		Text:   "Solid read.",
	}

	t.Run("omitted fields keep their stored values", func(t *testing.T) {
		uc, deps := newReviewCommands(t)
		text := "Even better on a second pass."

		deps.reviews.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil)
		deps.reviews.EXPECT().Update(gomock.Any(), id, 4, text).Return(nil)

		err := uc.UpdateReview(ctx, id, commands.UpdateReviewRequest{ReviewText: &text})
		require.NoError(t, err)
	})

	t.Run("present rating is revalidated", func(t *testing.T) {
		uc, deps := newReviewCommands(t)
		rating := 6

		deps.reviews.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil)
		deps.reviews.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := uc.UpdateReview(ctx, id, commands.UpdateReviewRequest{Rating: &rating})
		require.ErrorIs(t, err, domreview.ErrInvalidRating)
	})

	t.Run("unknown review id reports not found", func(t *testing.T) {
		uc, deps := newReviewCommands(t)

		deps.reviews.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("review not found", nil, infra.KindNotFound))

		err := uc.UpdateReview(ctx, id, commands.UpdateReviewRequest{})
		require.ErrorIs(t, err, commands.ErrReviewNotFound)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		uc, deps := newReviewCommands(t)
		id := uuid.New()

		deps.reviews.EXPECT().Delete(gomock.Any(), id).Return(nil)

		require.NoError(t, uc.DeleteReview(ctx, id))
	})

	t.Run("unknown review id reports not found", func(t *testing.T) {
		uc, deps := newReviewCommands(t)
		id := uuid.New()

		deps.reviews.EXPECT().Delete(gomock.Any(), id).
			Return(infra.WrapRepoErr("review not found", nil, infra.KindNotFound))

		require.ErrorIs(t, uc.DeleteReview(ctx, id), commands.ErrReviewNotFound)
	})
}
