//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"library-platform/internal/handler/api"
	resdto "library-platform/internal/handler/dto/response"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"
	"library-platform/tests/common/builder"
	"library-platform/tests/common/httptest"
	"library-platform/tests/common/testutil"
	commandsmock "library-platform/tests/mock/commands"
	queriesmock "library-platform/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoanCommands
	mockQueries  *queriesmock.MockLoanQueries
	handler      *api.LoanHandler
}

func (s *LoanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoanCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLoanQueries(s.mockCtrl)
	s.handler = api.NewLoanHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/loans", s.handler.List)
	s.router.GET("/loans/:id", s.handler.Get)
	s.router.POST("/loans", s.handler.Create)
	s.router.DELETE("/loans/:id", s.handler.Return)
}

func (s *LoanHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoanHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoanHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *LoanHandlerTestSuite) TestCreate() {
	url := "/loans"

	b := builder.NewLoanBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildViewQuery()
	expectedResult := &commands.CreateLoanResult{LoanID: returnView.ID}

	s.Run("success: returns 201 with message and loan payload", func() {
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), reqBody.ToCommand()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusCreated, rec.Code)

		var body struct {
			Message string               `json:"message"`
			Loan    *resdto.LoanResponse `json:"loan"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("Loan created successfully", body.Message)
		s.Equal(returnView.ID.String(), body.Loan.ID)
		s.Equal(returnView.UserName, body.Loan.UserName)
		s.Equal(returnView.BookTitle, body.Loan.BookTitle)
	})

	s.Run("missing or unknown reference: returns 404", func() {
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReferenceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "User or Book not found")
	})

	s.Run("book already on loan: returns 400", func() {
		s.mockCommands.EXPECT().CreateLoan(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookAlreadyLoaned).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Book is already on loan")
	})

	s.Run("validation: malformed body never reaches the command", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing userId", mutate: testutil.Field("userId", nil)},
			{name: "missing bookId", mutate: testutil.Field("bookId", nil)},
			{name: "malformed userId", mutate: testutil.Field("userId", "not-a-uuid")},
			{name: "malformed bookId", mutate: testutil.Field("bookId", "12345")},
		}
		for _, c := range cases {
			s.Run(c.name, func() {
				body := map[string]any{
					"userId": b.UserID.String(),
					"bookId": b.BookID.String(),
				}
				c.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})
}

// ================================================================================
// TestReturn
// ================================================================================

func (s *LoanHandlerTestSuite) TestReturn() {
	id := uuid.New()

	s.Run("success: returns 200 with message", func() {
		s.mockCommands.EXPECT().ReturnLoan(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/loans/"+id.String(), nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Book returned successfully")
	})

	s.Run("unknown loan: returns 404", func() {
		s.mockCommands.EXPECT().ReturnLoan(gomock.Any(), id).
			Return(commands.ErrLoanNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/loans/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "Loan not found")
	})

	s.Run("malformed id: returns 400 without calling the command", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/loans/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Invalid loan ID format")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *LoanHandlerTestSuite) TestGet() {
	view := builder.NewLoanBuilder().BuildViewQuery()

	s.Run("success: returns the loan with its snapshots", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loans/"+view.ID.String(), nil)
		s.Equal(http.StatusOK, rec.Code)

		var body resdto.LoanResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal(view.UserName, body.UserName)
		s.Equal(view.BookTitle, body.BookTitle)
	})

	s.Run("unknown loan: returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, queries.ErrLoanNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loans/"+id.String(), nil)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), "Loan not found")
	})
}

func (s *LoanHandlerTestSuite) TestList() {
	s.Run("success: returns all loans", func() {
		views := []*queries.LoanView{
			builder.NewLoanBuilder().BuildViewQuery(),
			builder.NewLoanBuilder().BuildViewQuery(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loans", nil)
		s.Equal(http.StatusOK, rec.Code)

		var body []*resdto.LoanResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Len(body, 2)
	})
}
