package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxPrincipalKey = "auth_principal"

// Principal is the authenticated identity resolved from a bearer token.
// Services receive it (or just the user id) as an explicit argument.
type Principal struct {
	UserID   int64
	Username string
}

func RequireJWT(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "missing bearer token")
			return
		}
		claims, err := m.Parse(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}
		c.Set(ctxPrincipalKey, Principal{UserID: claims.UserID, Username: claims.Username})
		c.Next()
	}
}

// abortUnauthorized mirrors the handler envelope so 401s raised before any
// handler runs look the same as every other error response.
func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":    false,
		"code":       http.StatusUnauthorized,
		"message":    message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": uuid.NewString(),
	})
}

func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(ctxPrincipalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
