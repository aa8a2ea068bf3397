// Package auth issues and verifies the signed tokens embedded in session
// records, so a session pulled from the store can be checked for tampering.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
)

// Claims extends the standard claims with the signed-in user's email.
type Claims struct {
	jwt.RegisteredClaims
	Email string
}

// GenerateToken signs a token for email valid for validityDuration. The
// token id (jti) is a fresh UUID.
func GenerateToken(email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetEmailFromToken verifies tokenString and returns the email it was issued
// for. Returns common.ErrInvalidToken for anything unverifiable.
func GetEmailFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Email, nil
}
