package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yamadori/todolog/internal/constants"
)

// LoginPath is where unauthenticated callers are redirected.
const LoginPath = "/login"

// RequireAuth checks if the user is authenticated via session. An absent or
// stale session redirects to the login page instead of returning an error
// body.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username := session.Get(constants.SessionKeyUsername)

		if username == nil {
			c.Redirect(http.StatusTemporaryRedirect, LoginPath)
			c.Abort()
			return
		}

		// Store username in context for easy access in handlers
		c.Set(constants.ContextKeyUsername, username)
		c.Next()
	}
}

// GetUsername retrieves the current username from context
func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyUsername)
	if !exists {
		return "", false
	}

	username, ok := value.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
