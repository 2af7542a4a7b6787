package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const authContextUserKey = "authenticatedUserID"

// authMiddleware verifies the bearer token and stashes the caller's user id
// on the gin context. Tokens are HMAC-signed with the shared secret; the
// subject claim carries the user account id.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}
	raw := strings.TrimPrefix(header, "Bearer ")
	if raw == header {
		returnErrorJsonCode(fmt.Errorf("malformed authorization header"), c, 401)
		return
	}

	userID, err := m.verifyToken(raw)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid token: %w", err), c, 401)
		return
	}

	c.Set(authContextUserKey, userID)
	c.Next()
}

func (m ApiHandler) verifyToken(raw string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(m.JwtSecret), nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing sub claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("sub claim is not a user id: %w", err)
	}

	return userID, nil
}

func authenticatedUser(c *gin.Context) (uuid.UUID, error) {
	v, ok := c.Get(authContextUserKey)
	if !ok {
		return uuid.Nil, fmt.Errorf("request is not authenticated")
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("request is not authenticated")
	}

	return userID, nil
}
