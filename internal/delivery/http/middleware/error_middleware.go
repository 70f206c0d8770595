package middleware

import (
	"errors"
	"net/http"

	"psbl-site-backend/internal/delivery/http/response"
	"psbl-site-backend/pkg/apperror"
	"psbl-site-backend/pkg/logger"
	"psbl-site-backend/pkg/mail"

	"github.com/gin-gonic/gin"
)

// genericFailure is shown for any unexpected server error. Internals are
// logged, never sent to the client.
const genericFailure = "Viestin lähetys epäonnistui."

// ErrorHandler converts errors attached to the Gin context into the wire
// contract. Relay-reported failures keep their structured payload;
// everything else unexpected becomes a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			switch {
			case appErr.Code == http.StatusBadRequest:
				response.BadRequest(c, appErr.Message)
			case appErr.Code == http.StatusNotFound:
				response.NotFound(c, appErr.Message)
			default:
				logger.Log.Error("request failed", "error", err, "path", c.FullPath())
				response.Fail(c, appErr.Code, appErr.Message)
			}
			return
		}

		var relayErr *mail.RelayError
		if errors.As(err, &relayErr) {
			logger.Log.Error("relay delivery failed", "error", err, "path", c.FullPath())
			response.Fail(c, http.StatusInternalServerError, relayErr)
			return
		}

		logger.Log.Error("unexpected error", "error", err, "path", c.FullPath())
		response.Fail(c, http.StatusInternalServerError, genericFailure)
	}
}
