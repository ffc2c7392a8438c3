package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errNoExpiry = errors.New("token has no expiry claim")

// TokenExpiry extracts the expiry of the current access token without
// verifying its signature (the client holds no verification key; the backend
// remains the authority, surfacing expiry as 401). Used for status display
// only.
func (m *Manager) TokenExpiry() (time.Time, error) {
	token := m.Token()
	if token == "" {
		return time.Time{}, errors.New("no token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errNoExpiry
	}
	return exp.Time, nil
}
