package api

import (
	"errors"
	"net/http"

	reqdto "library-platform/internal/handler/dto/request"
	resdto "library-platform/internal/handler/dto/response"
	"library-platform/internal/handler/httperr"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LoanHandler struct {
	cmds commands.LoanCommands
	q    queries.LoanQueries
}

func NewLoanHandler(cmds commands.LoanCommands, q queries.LoanQueries) *LoanHandler {
	return &LoanHandler{cmds: cmds, q: q}
}

// @Summary List loans
// @Tags loans
// @Produce json
// @Success 200 {array} resdto.LoanResponse
// @Router /loans [get]
func (h *LoanHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoanList(views))
}

// @Summary Get loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} resdto.LoanResponse
// @Router /loans/{id} [get]
func (h *LoanHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid loan ID format")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrLoanNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Loan not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLoanView(view))
}

// @Summary Create loan (borrow book)
// @Tags loans
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLoanRequest true "Create loan request"
// @Success 201 {object} map[string]any
// @Router /loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req reqdto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateLoan(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReferenceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User or Book not found")
		case errors.Is(err, commands.ErrBookAlreadyLoaned):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Book is already on loan")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.LoanID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Loan created successfully",
		"loan":    resdto.FromLoanView(view),
	})
}

// @Summary Return loan (delete)
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} map[string]string
// @Router /loans/{id} [delete]
func (h *LoanHandler) Return(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid loan ID format")
		return
	}
	if err := h.cmds.ReturnLoan(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrLoanNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Loan not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book returned successfully"})
}
