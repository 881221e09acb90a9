package security

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and that the user still exists,
// then stores user_id in the request context.
func AuthMiddleware(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			SendError(c, http.StatusUnauthorized, CodeMissingToken, "Authentication required",
				"Please provide a valid authorization token in the request header", nil)
			c.Abort()
			return
		}

		tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

		userID, err := VerifyAccessToken(tokenStr)
		if err != nil {
			SendError(c, http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token",
				"The provided token is invalid, expired, or malformed. Please login again to get a new token", nil)
			c.Abort()
			return
		}

		var exists bool
		err = db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
		if err != nil {
			SendError(c, http.StatusInternalServerError, CodeAuthVerificationError, "Authentication verification failed",
				"Unable to verify user status. Please try again later", nil)
			c.Abort()
			return
		}
		if !exists {
			SendError(c, http.StatusUnauthorized, CodeUserNotFound, "User account not found",
				"Your account is not found. Please login again", nil)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// RequireAdmin gates a route group on the admin role. The decision itself
// lives in AuthorizeAdmin; denial never distinguishes a failed lookup from
// a non-admin profile.
func RequireAdmin(src RoleSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			SendError(c, http.StatusUnauthorized, CodeUserNotAuthenticated, "User not authenticated",
				"User authentication is required to access this resource", nil)
			c.Abort()
			return
		}

		if err := AuthorizeAdmin(c.Request.Context(), src, userID); err != nil {
			SendError(c, http.StatusForbidden, CodeInsufficientPermissions, "Insufficient permissions",
				"Access denied. This resource requires the admin role", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
