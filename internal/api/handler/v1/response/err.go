package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

type Err struct {
	Err            error             `json:"-"`
	HTTPStatusCode int               `json:"-"`
	Message        string            `json:"message"`
	Errors         map[string]string `json:"errors,omitempty"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.Message
	}

	return e.Err.Error()
}

// RenderErr aborts the request with err. Server errors are logged with their cause, which is never
// written to the client.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(err.Message,
			zap.Error(err.Err),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("request_id", ctx.Writer.Header().Get("X-Request-ID")),
		)
	}

	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        err.Error(),
	}
}

// ErrValidation renders field errors from ozzo-validation under "errors".
func ErrValidation(err error) *Err {
	e := &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Message:        "Invalid data",
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		e.Errors = make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			e.Errors[field] = fieldErr.Error()
		}
	} else {
		e.Errors = map[string]string{"body": err.Error()}
	}

	return e
}

func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		Err:            fmt.Errorf("%s with %s %v not found", resource, key, value),
		HTTPStatusCode: http.StatusNotFound,
		Message:        fmt.Sprintf("%s not found", resource),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Message:        "internal server error",
	}
}
