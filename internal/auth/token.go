package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	jwt.RegisteredClaims
}

// SignSessionToken wraps a session id in an HS256-signed token. Expiry is
// deliberately not encoded here: the session row owns it, because the window
// slides on every request and deleting the row must revoke the login even if
// the client still holds the token.
func SignSessionToken(secret, sessionID string, issuedAt time.Time) (string, error) {
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       sessionID,
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies the signature and returns the session id.
func ParseSessionToken(secret, tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session token")
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.ID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.ID, nil
}
