package auth

import (
	"time"

	"brookside/middleware"
	"brookside/models"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 7 * 24 * time.Hour

// MakeToken issues a signed HS256 token carrying the user identity,
// expiring 7 days from issuance.
func MakeToken(secret []byte, user *models.User) (string, error) {
	now := time.Now()
	claims := &middleware.Claims{
		UserID: user.UserID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
