package server

import (
	"net/http"
	"strings"
	"time"

	"student-exchange/services/helpers"
	"student-exchange/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired validates the bearer token and attaches the verified caller
// identity to the request context. Authentication itself (registration,
// token issuance) lives in an external service; this core only trusts the
// username claim of a token signed with the shared secret.
func AuthRequired(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.JSONMessage(c, http.StatusUnauthorized, "missing or malformed authorization header")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.JSONMessage(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSONMessage(c, http.StatusUnauthorized, "invalid token claims")
			c.Abort()
			return
		}
		username, ok := claims["username"].(string)
		if !ok || username == "" {
			utils.JSONMessage(c, http.StatusUnauthorized, "invalid username in token")
			c.Abort()
			return
		}

		c.Set(helpers.IdentityKey, username)
		c.Next()
	}
}
