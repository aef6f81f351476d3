package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager signs and validates the anonymous session tokens the
// site hands out. A token carries nothing but the session id; there
// are no user accounts.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("empty session token secret")
	}
	return &TokenManager{secret: []byte(secret)}, nil
}

func (t *TokenManager) Generate(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("empty sessionID passed to Generate")
	}

	claims := jwt.MapClaims{
		"sessionID": sessionID,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenManager) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sessionID, _ := claims["sessionID"].(string)
	if sessionID == "" {
		return "", errors.New("token missing sessionID")
	}
	return sessionID, nil
}
