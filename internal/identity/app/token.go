package app

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

const sessionTokenTTL = 7 * 24 * time.Hour

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// tokenManager signs and verifies the HS256 session tokens the demo binary
// uses to restore a signed-in session across restarts.
type tokenManager struct {
	secret []byte
}

func newTokenManager(secret string) tokenManager {
	return tokenManager{secret: []byte(secret)}
}

func (m tokenManager) Issue(identityID, email string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "storefront",
			Subject:   identityID,
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify returns the identity id the token was issued for.
func (m tokenManager) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
