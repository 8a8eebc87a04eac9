package middleware

import (
	"log/slog"
	"net/http"

	"library-platform/internal/handler/httperr"
	"library-platform/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Search backward through the error stack
		var public *gin.Error
		for i := len(c.Errors) - 1; i >= 0 && public == nil; i-- {
			if c.Errors[i].IsType(gin.ErrorTypePublic) {
				public = c.Errors[i]
			}
		}

		if public != nil {
			if resp, ok := public.Meta.(httperr.Response); ok {
				if resp.Status >= http.StatusInternalServerError {
					logger.Error("unhandled server error",
						"path", c.Request.URL.Path,
						"stack", errs.ExtractStackLines(public.Err, 10),
					)
				}
				if !c.Writer.Written() {
					c.JSON(resp.Status, resp)
				}
				return
			}
		}

		if c.Writer.Written() {
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.JSON(http.StatusInternalServerError, httperr.Response{
					Status: http.StatusInternalServerError,
					Error:  "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
