package middleware

import (
	"errors"
	"net/http"

	"talento-local-backend/internal/delivery/http/response"
	"talento-local-backend/pkg/apperror"
	"talento-local-backend/pkg/logger"
	"talento-local-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. sec may be nil.
func ErrorHandler(sec *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Internal details stay in the log.
			logger.Log.Error("unhandled error",
				"error", err,
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
			)
			response.Error(c, http.StatusInternalServerError, "Ocurrió un error inesperado. Intenta de nuevo más tarde.", nil)
			return
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("internal error", "error", appErr.Err, "path", c.FullPath(), "request_id", c.GetString("RequestID"))
		}
		if sec != nil {
			logAccessDenied(c, sec, appErr)
		}
		response.Error(c, appErr.Code, appErr.Message, appErr.Details)
	}
}

func logAccessDenied(c *gin.Context, sec *security.SecurityLogger, appErr *apperror.AppError) {
	var event security.EventType
	switch appErr.Code {
	case http.StatusUnauthorized:
		if errors.Is(appErr, apperror.ErrInvalidPassword) {
			return
		}
		event = security.EventUnauthorizedAccess
	case http.StatusForbidden:
		event = security.EventForbiddenAccess
	default:
		return
	}

	userID := ""
	if actor := Actor(c); actor != nil {
		userID = actor.UserID
	}
	sec.LogAccessDenied(c.Request.Context(), event, userID, c.ClientIP(), c.GetString("RequestID"), c.FullPath(), appErr.Message)
}
