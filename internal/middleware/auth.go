package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/myebiez/daur-cuan-app/internal/auth"
)

const userEmailContextKey = "userEmail"

func UserEmailFromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(userEmailContextKey)
	if !ok {
		return "", false
	}
	email, ok := value.(string)
	return email, ok && email != ""
}

func RequireAuth(cfg auth.TokenConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
			c.Abort()
			return
		}

		claims, err := auth.VerifyToken(parts[1], cfg)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
			c.Abort()
			return
		}

		c.Set(userEmailContextKey, claims.UserEmail)
		c.Next()
	}
}
