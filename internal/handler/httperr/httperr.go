package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire-visible error envelope: a single message under
// "error", matching what the service consumers already parse.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// preserves original error for logging and later monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
