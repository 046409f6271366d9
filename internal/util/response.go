package util

import (
	"acceluni_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorBody 统一错误响应结构
type ErrorBody struct {
	Error    string      `json:"error"`
	Message  string      `json:"message,omitempty"`
	Code     string      `json:"code,omitempty"`
	Details  interface{} `json:"details,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func StatusFor(kind ErrorKind) int {
	switch kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization, KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindSubscriptionRequired:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUpstreamGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func RespondError(c *gin.Context, err error) {
	appErr := asAppError(err)
	status := StatusFor(appErr.Kind)

	if status >= http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("kind", appErr.Kind.String()),
			zap.Error(err),
		)
	}

	body := ErrorBody{
		Error:    http.StatusText(status),
		Message:  appErr.Message,
		Code:     appErr.Code,
		Details:  appErr.Details,
		Redirect: appErr.Redirect,
	}
	if status == http.StatusInternalServerError {
		body.Message = "internal server error"
	}
	c.AbortWithStatusJSON(status, body)
}

func asAppError(err error) *AppError {
	if err == nil {
		return WrapInternal("unknown error", nil)
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return WrapInternal(err.Error(), err)
}

func Unauthorized(c *gin.Context) {
	RespondError(c, NewAuthenticationError("authentication required"))
}

func Forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, ErrorBody{Error: http.StatusText(http.StatusForbidden), Code: "FORBIDDEN"})
}

func BadRequest(c *gin.Context, message string) {
	RespondError(c, NewValidationError("%s", message))
}
