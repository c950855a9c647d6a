package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"jobboard/internal/domain"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// issue creates a signed HS256 token carrying the user id and role.
func (i tokenIssuer) issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  now.Add(i.ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// authRequired validates the bearer token and stores the caller's id and
// role on the request context.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return h.tokens.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ctxUserID, int64(sub))
		c.Set(ctxRole, domain.Role(role))
		c.Next()
	}
}

// requireRole gates a route to callers whose token carries the given role.
// It must run after authRequired.
func requireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerRole(c) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

func callerID(c *gin.Context) int64 {
	id, _ := c.MustGet(ctxUserID).(int64)
	return id
}

func callerRole(c *gin.Context) domain.Role {
	role, _ := c.MustGet(ctxRole).(domain.Role)
	return role
}
