package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/guestbook/internal/common"
)

// statusFor maps the service error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorMissingToken),
		errors.Is(err, common.ErrorInvalidToken),
		errors.Is(err, common.ErrorTokenExpired),
		errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, common.ErrorUnsupportedMedia):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError renders the JSON error envelope for err. Internal failures
// keep their message out of the response unless dev is set.
func abortWithError(c *gin.Context, err error, dev bool) {
	status := statusFor(err)

	msg := err.Error()
	if status == http.StatusInternalServerError && !dev {
		msg = "internal error"
	}

	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
