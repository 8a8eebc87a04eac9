package api

import (
	"errors"
	"net/http"

	"library-platform/internal/domain/book"
	reqdto "library-platform/internal/handler/dto/request"
	resdto "library-platform/internal/handler/dto/response"
	"library-platform/internal/handler/httperr"
	"library-platform/internal/usecase/commands"
	"library-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookHandler struct {
	cmds commands.BookCommands
	q    queries.BookQueries
}

func NewBookHandler(cmds commands.BookCommands, q queries.BookQueries) *BookHandler {
	return &BookHandler{cmds: cmds, q: q}
}

func (h *BookHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookList(views))
}

func (h *BookHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID format")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrBookNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

func (h *BookHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, book.ErrEmptyTitle) || errors.Is(err, book.ErrEmptyAuthor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookView(view))
}

func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID format")
		return
	}
	var req reqdto.UpdateBookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookNotFoundWrite):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found")
		case errors.Is(err, book.ErrEmptyTitle), errors.Is(err, book.ErrEmptyAuthor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error())
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
	c.JSON(http.StatusOK, resdto.FromBookView(view))
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid book ID format")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrBookNotFoundWrite) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Book not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal Server Error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
