package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rahulsingh558/the-piquant-pan/internal/handlers"
	"github.com/rahulsingh558/the-piquant-pan/internal/services"
)

// AdminAuth rejects requests without a live admin session.
func AdminAuth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handlers.SessionToken(c)
		if token == "" || !auth.IsLoggedIn(c.Request.Context(), token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin session required"})
			c.Abort()
			return
		}
		c.Set("adminUsername", auth.Username(c.Request.Context(), token))
		c.Next()
	}
}
