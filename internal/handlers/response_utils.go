package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"aep-proxy/internal/aep"
	"aep-proxy/internal/auth"
	"aep-proxy/internal/models"
)

// RespondWithError sends a JSON error response with the given label and message.
func RespondWithError(c *gin.Context, httpStatus int, label string, message string) {
	c.AbortWithStatusJSON(httpStatus, models.APIError{Error: label, Message: message})
}

// RespondWithSuccess sends a JSON success response.
// For 204 No Content, send no body.
func RespondWithSuccess(c *gin.Context, httpStatus int, data interface{}) {
	if data != nil {
		c.JSON(httpStatus, data)
	} else {
		c.Status(httpStatus)
	}
}

// ErrorHandler is the single translator from gateway failures to HTTP
// responses. Handlers record failures with c.Error and write nothing.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, body := TranslateError(err)

		slog.Error("request failed",
			"request_id", GetRequestID(c),
			"path", c.FullPath(),
			"status", status,
			"error", err,
		)
		c.JSON(status, body)
	}
}

// TranslateError maps an error to the status and body returned to the caller.
func TranslateError(err error) (int, models.APIError) {
	if upErr, ok := aep.AsUpstream(err); ok {
		return upErr.Status, models.APIError{Error: upstreamBody(upErr.Body), Status: upErr.Status}
	}

	if aep.IsNetwork(err) {
		return http.StatusServiceUnavailable, models.APIError{
			Error:   models.ErrorServiceUnavailable,
			Message: models.MessageUpstreamUnreachable,
		}
	}

	var authErr *auth.AuthError
	if errors.As(err, &authErr) {
		return http.StatusInternalServerError, models.APIError{Error: models.ErrorInternalServer, Message: authErr.Error()}
	}

	message := "Something went wrong"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return http.StatusInternalServerError, models.APIError{Error: models.ErrorInternalServer, Message: message}
}

// upstreamBody passes the upstream payload through opaquely: JSON stays JSON,
// anything else becomes a string.
func upstreamBody(body []byte) any {
	if len(body) == 0 {
		return models.ErrorUpstreamDefault
	}
	if json.Valid(body) {
		return json.RawMessage(body)
	}
	return string(body)
}
