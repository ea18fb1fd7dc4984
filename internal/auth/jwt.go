// Package auth issues and verifies the HS256 tokens used to resume a CLI
// session without re-entering the password.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/marketdesk/internal/common"
)

// Claims carries the registered claims plus the account identity: the
// email the session belongs to and the user class of its store.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Kind  string `json:"kind"`
}

// GenerateToken signs a session token for the given account, valid for
// validityDuration from now.
func GenerateToken(email, kind string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Email: email,
		Kind:  kind,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ParseToken verifies tokenString and returns the account email and kind.
// Expired, malformed or otherwise invalid tokens fail with
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (email, kind string, err error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", "", common.ErrInvalidToken
	}
	if !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.Email, claims.Kind, nil
}
