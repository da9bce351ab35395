package httpapi

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/server/services"
)

// usernameKey is the gin context key carrying the authenticated identity.
const usernameKey = "username"

// authMiddleware verifies the Authorization bearer token and attaches the
// decoded identity to the request context. Unauthenticated requests never
// reach the protected handler.
func authMiddleware(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, common.ErrorMissingToken, false)
			return
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abortWithError(c, common.ErrorInvalidToken, false)
			return
		}

		username, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err, false)
			return
		}

		c.Set(usernameKey, username)
		c.Next()
	}
}

// recoveryMiddleware is the catch-all for panicking handlers: log the stack,
// answer a generic 500, and expose the message only in dev mode.
func recoveryMiddleware(logger logging.Logger, dev bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
				body := gin.H{"error": "Something went wrong!"}
				if dev {
					body["details"] = fmt.Sprint(r)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
