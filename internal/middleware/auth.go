package middleware

import (
	"net/http"
	"strings"

	"aircontrol/internal/pkg/jwt"
	"aircontrol/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and stores user_id and role on the
// context. Websocket upgrades may pass the token as a query parameter
// instead, browsers cannot set headers on a ws handshake.
func Auth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		} else if q := c.Query("token"); q != "" {
			token = q
		}

		if token == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization token required")
			c.Abort()
			return
		}

		claims, err := j.ValidateToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
