package api

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_verifyToken(t *testing.T) {
	handler := ApiHandler{JwtSecret: "test-secret"}

	signToken := func(t *testing.T, secret string, claims jwt.MapClaims) string {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return raw
	}

	t.Run("valid token yields the subject's user id", func(t *testing.T) {
		userID := uuid.New()
		raw := signToken(t, "test-secret", jwt.MapClaims{"sub": userID.String()})

		got, err := handler.verifyToken(raw)
		require.NoError(t, err)
		require.Equal(t, userID, got)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		raw := signToken(t, "other-secret", jwt.MapClaims{"sub": uuid.New().String()})

		_, err := handler.verifyToken(raw)
		require.Error(t, err)
	})

	t.Run("missing sub claim is rejected", func(t *testing.T) {
		raw := signToken(t, "test-secret", jwt.MapClaims{"aud": "fairslot"})

		_, err := handler.verifyToken(raw)
		require.Error(t, err)
	})

	t.Run("non-uuid sub is rejected", func(t *testing.T) {
		raw := signToken(t, "test-secret", jwt.MapClaims{"sub": "not-a-uuid"})

		_, err := handler.verifyToken(raw)
		require.Error(t, err)
	})
}
