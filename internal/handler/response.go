// Package handler wires the HTTP surface. Every response, success or error,
// uses the same envelope so clients can parse uniformly.
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanuei/YoutubePlanner/internal/apperr"
)

type envelope struct {
	Success   bool               `json:"success"`
	Code      int                `json:"code"`
	Message   string             `json:"message"`
	Data      any                `json:"data,omitempty"`
	Errors    []apperr.FieldError `json:"errors,omitempty"`
	Timestamp string             `json:"timestamp"`
	RequestID string             `json:"request_id"`
}

func respond(c *gin.Context, status int, message string, data any, fields []apperr.FieldError) {
	c.JSON(status, envelope{
		Success:   status < http.StatusBadRequest,
		Code:      status,
		Message:   message,
		Data:      data,
		Errors:    fields,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: uuid.NewString(),
	})
}

func ok(c *gin.Context, data any) {
	respond(c, http.StatusOK, "success", data, nil)
}

func okMessage(c *gin.Context, message string) {
	respond(c, http.StatusOK, message, nil, nil)
}

func created(c *gin.Context, data any) {
	respond(c, http.StatusCreated, "created", data, nil)
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// fail translates service errors into the envelope. Unknown errors are
// logged and reported as a bare 500 without leaking detail.
func fail(c *gin.Context, logger *zap.Logger, err error) {
	if e, ok := apperr.As(err); ok {
		if e.Kind == apperr.KindInternal {
			logger.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			respond(c, http.StatusInternalServerError, "internal server error", nil, nil)
			return
		}
		respond(c, e.HTTPStatus(), e.Message, nil, e.Fields)
		return
	}

	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	respond(c, http.StatusInternalServerError, "internal server error", nil, nil)
}

// badRequest reports a binding failure, expanding validator errors into
// per-field messages.
func badRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]apperr.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, apperr.FieldError{
				Field:   fe.Field(),
				Message: "failed validation on '" + fe.Tag() + "'",
			})
		}
		respond(c, http.StatusBadRequest, "validation failed", nil, fields)
		return
	}
	respond(c, http.StatusBadRequest, "invalid request body", nil, nil)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respond(c, http.StatusBadRequest, "invalid "+name, nil, nil)
		return 0, false
	}
	return id, true
}
