package middleware

import "github.com/gin-gonic/gin"

// userIDKey stores the authenticated user's id in the request context.
const userIDKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user id set by the auth
// middleware. The second return value reports whether one was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(userIDKey); v != nil {
		if userID, ok := v.(string); ok {
			return userID, true
		}
	}
	return "", false
}
