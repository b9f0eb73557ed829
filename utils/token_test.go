package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/learnhub/learnhub_backend/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	user := &models.User{ID: uuid.New(), Role: "user"}

	signed, err := IssueToken(user)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("testsecret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, "user", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	expiresIn := time.Until(time.Unix(int64(exp), 0))
	assert.InDelta(t, (7 * 24 * time.Hour).Seconds(), expiresIn.Seconds(), 60)
}

func TestProfileNeverSerializesPassword(t *testing.T) {
	user := &models.User{
		ID:       uuid.New(),
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "$2a$10$secret-hash",
		Role:     "user",
	}

	body, err := json.Marshal(user.Profile())
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret-hash")
	assert.NotContains(t, string(body), "password")
}
