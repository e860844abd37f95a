package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"weekend-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest  = "invalid_request"
	CodeUnauthorized    = "unauthorized"
	CodeTooManyRequests = "too_many_requests"
	CodeInternal        = "internal_error"
)

const maxStackLines = 12

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type Detail struct {
	Code string `json:"code"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithCode is AbortWithError with the standard {"code": ...} detail.
func AbortWithCode(c *gin.Context, status int, err error, code, msg string) {
	AbortWithError(c, status, err, msg, Detail{Code: code})
}

// FromError maps err onto a response. Reasons keep their own code and
// message; anything else becomes a generic 500 without internal detail.
func FromError(c *gin.Context, err error) {
	if reason, ok := errs.ReasonOf(err); ok {
		AbortWithCode(c, StatusOf(reason), err, reason.Code(), reason.Message())
		return
	}
	slog.ErrorContext(c.Request.Context(), "unhandled error",
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, maxStackLines))
	AbortWithCode(c, http.StatusInternalServerError, err, CodeInternal, "Internal error")
}

func StatusOf(reason *errs.Reason) int {
	switch kind := reason.Kind(); {
	case errors.Is(kind, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithCode(c, http.StatusBadRequest, err, CodeInvalidRequest, msg)
}

func Unauthorized(c *gin.Context, err error, msg string) {
	AbortWithCode(c, http.StatusUnauthorized, err, CodeUnauthorized, msg)
}

func TooManyRequests(c *gin.Context, err error) {
	AbortWithCode(c, http.StatusTooManyRequests, err, CodeTooManyRequests, "Too many requests, please try again later")
}
