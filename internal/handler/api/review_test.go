//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"library-platform/internal/domain/review"
	"library-platform/internal/handler/api"
	resdto "library-platform/internal/handler/dto/response"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"
	"library-platform/tests/common/builder"
	"library-platform/tests/common/httptest"
	commandsmock "library-platform/tests/mock/commands"
	queriesmock "library-platform/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/reviews", s.handler.List)
	s.router.GET("/reviews/stats/:bookId", s.handler.Stats)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.POST("/reviews", s.handler.Create)
	s.router.PUT("/reviews/:id", s.handler.Update)
	s.router.DELETE("/reviews/:id", s.handler.Delete)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	b := builder.NewReviewBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildViewQuery()
	expectedResult := &commands.CreateReviewResult{ReviewID: returnView.ID}

	s.Run("success: returns 201 with the stored review", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody.ToCommand()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusCreated, rec.Code)

		var body resdto.ReviewResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(returnView.ID.String(), body.ID)
		s.Equal(returnView.UserName, body.UserName)
		s.Equal(returnView.BookTitle, body.BookTitle)
		s.Equal(returnView.Rating, body.Rating)
	})

	s.Run("out-of-range rating: returns 400 with the documented message", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, review.ErrInvalidRating).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Rating must be between 1 and 5")
	})

	s.Run("missing or unknown reference: returns 404", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReferenceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "User or Book not found")
	})

	s.Run("missing identifiers never reach the command", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"rating":     5,
			"reviewText": "no ids",
		})
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	b := builder.NewReviewBuilder()
	returnView := b.BuildViewQuery()
	url := "/reviews/" + returnView.ID.String()

	s.Run("success: returns 200 with the updated review", func() {
		reqBody := b.BuildUpdateRequestDTO()
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), returnView.ID, reqBody.ToCommand()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("out-of-range rating: returns 400 with the documented message", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(review.ErrInvalidRating).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 6})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Rating must be between 1 and 5")
	})

	s.Run("unknown review: returns 404", func() {
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"rating": 3})
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "Review not found")
	})

	s.Run("malformed id: returns 400 without calling the command", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reviews/not-a-uuid", map[string]any{"rating": 3})
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Invalid review ID format")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: returns 200 with message", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reviews/"+id.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Review deleted successfully")
	})

	s.Run("unknown review: returns 404", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), id).
			Return(commands.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reviews/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestList / TestStats
// ================================================================================

func (s *ReviewHandlerTestSuite) TestList() {
	s.Run("success: returns all reviews", func() {
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().BuildViewQuery(),
			builder.NewReviewBuilder().BuildViewQuery(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Nil()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews", nil)
		s.Equal(http.StatusOK, rec.Code)

		var body []*resdto.ReviewResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Len(body, 2)
	})

	s.Run("bookId query narrows the listing", func() {
		bookID := uuid.New()
		views := []*queries.ReviewView{builder.NewReviewBuilder().BuildViewQuery()}
		s.mockQueries.EXPECT().List(gomock.Any(), &bookID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews?bookId="+bookID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("malformed bookId query: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews?bookId=not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Invalid book ID format")
	})
}

func (s *ReviewHandlerTestSuite) TestStats() {
	s.Run("success: returns aggregated stats", func() {
		bookID := uuid.New()
		s.mockQueries.EXPECT().GetBookRatingStats(gomock.Any(), bookID).
			Return(&queries.BookRatingStats{AverageRating: 4.7, TotalReviews: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/stats/"+bookID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.BookRatingStatsResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(4.7, body.AverageRating)
		s.Equal(int32(3), body.TotalReviews)
	})

	s.Run("malformed book id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/stats/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Invalid book ID format")
	})
}
