package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodstock-inventory/internal/auth"
)

const (
	// SubjectKey is the key under which the authenticated subject is
	// stored in the gin context.
	SubjectKey = "auth_subject"
)

// Authenticated gates a route group on a valid bearer token. The service
// does not manage identities; anything carrying a token signed by the
// identity provider's secret counts as the authenticated user.
func Authenticated(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Missing authorization token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "Invalid authorization format. Use: Bearer <token>")
			return
		}

		claims, err := auth.ValidateToken(secret, parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(SubjectKey, claims.Subject)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response := gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	}
	if correlationID := GetCorrelationID(c); correlationID != "" {
		response["correlation_id"] = correlationID
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, response)
}
