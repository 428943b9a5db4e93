package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rishabh-bijalwan12/vibe-share/auth"
	"github.com/rishabh-bijalwan12/vibe-share/store"
)

// UserKey is the context key under which RequireAuth stores the resolved user.
const UserKey = "user"

// RequireAuth guards protected routes. It expects an Authorization header of
// the form "bearer <token>", verifies the token, loads the referenced user
// and attaches the full record to the context. Handlers behind it always see
// an existing user, never a raw id.
func RequireAuth(tokens *auth.TokenService, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "You must be logged in"})
			return
		}

		tokenString := header
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			tokenString = header[7:]
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found. Please log in again."})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
