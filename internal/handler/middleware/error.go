package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"weekend-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error a handler attached without
// writing a body itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if len(c.Errors) == 0 {
			return
		}
		httperr.AbortWithCode(c, http.StatusInternalServerError, c.Errors.Last().Err, httperr.CodeInternal, "Internal error")
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				httperr.AbortWithCode(c, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), httperr.CodeInternal, "Internal error")
			}
		}()
		c.Next()
	}
}
