package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/rkashyapa/automanage-industrial-hub/internal/apierror"
)

const ClaimsKey = "claims"

// SessionClaims are the custom claims embedded in every session token.
// Sessions are anonymous; the session id is the only identity there is.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionAuth validates the Bearer token on every workspace route.
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Invalid or expired session token"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// SessionID retrieves the authenticated session id from the Gin context.
// Empty on routes that never went through SessionAuth.
func SessionID(c *gin.Context) string {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return ""
	}
	claims, _ := v.(*SessionClaims)
	if claims == nil {
		return ""
	}
	return claims.SessionID
}
