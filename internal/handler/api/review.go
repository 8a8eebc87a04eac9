package api

import (
	"errors"
	"net/http"

	"library-platform/internal/domain/review"
	reqdto "library-platform/internal/handler/dto/request"
	resdto "library-platform/internal/handler/dto/response"
	"library-platform/internal/handler/httperr"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param bookId query string false "Filter by book ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	var bookID *uuid.UUID
	if v := c.Query("bookId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID format")
			return
		}
		bookID = &id
	}
	views, err := h.q.List(c.Request.Context(), bookID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(views))
}

// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review ID format")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReviewNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Rating statistics for a book
// @Tags reviews
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} resdto.BookRatingStatsResponse
// @Router /reviews/stats/{bookId} [get]
func (h *ReviewHandler) Stats(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID format")
		return
	}
	stats, err := h.q.GetBookRatingStats(c.Request.Context(), bookID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookRatingStats(stats))
}

// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating must be between 1 and 5")
		case errors.Is(err, commands.ErrReferenceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User or Book not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ReviewID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary Update review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review ID format")
		return
	}
	var req reqdto.UpdateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request")
		return
	}

	if err := h.cmds.UpdateReview(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, review.ErrInvalidRating):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rating must be between 1 and 5")
		case errors.Is(err, commands.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review ID format")
		return
	}
	if err := h.cmds.DeleteReview(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrReviewNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
