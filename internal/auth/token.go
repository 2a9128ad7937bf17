// Package auth is the boundary to the external identity provider. The
// service itself never manages users or sessions; it only answers
// "authenticated or not" by validating bearer tokens signed with the
// shared secret.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("missing authorization token")
)

// Claims is the authenticated-user marker carried by a token.
type Claims struct {
	Subject string `json:"sub_name"`
	jwt.RegisteredClaims
}

// GenerateToken mints a signed token for the given subject. Used by the
// tokengen tool; the production issuer is the external identity provider.
func GenerateToken(secret []byte, issuer, subject string, ttl time.Duration) (string, error) {
	claims := &Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and validates a token string. Returns the claims
// for a valid token, ErrInvalidToken otherwise.
func ValidateToken(secret []byte, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
