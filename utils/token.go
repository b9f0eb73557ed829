package utils

import (
	"time"

	config "github.com/learnhub/learnhub_backend/configs"
	"github.com/learnhub/learnhub_backend/models"
	"github.com/golang-jwt/jwt/v4"
)

// Tokens expire seven days after issuance. There is no refresh flow;
// the client logs in again.
const tokenTTL = 7 * 24 * time.Hour

func IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}
