// Package session holds the logged-in user's credential. It replaces the
// browser's local storage with an explicit value and an injectable Store.
package session

import (
	"context"
	"errors"
	"time"

	"campusevents/src-client/jwt"
	"campusevents/src-client/model"
)

var ErrNoSession = errors.New("no session")

type Session struct {
	Token string
	Role  model.Role
	Name  string
}

func (s Session) IsZero() bool {
	return s.Token == ""
}

// Expiry read from the token claims. The token is not verified, the
// backend stays the only authority on it.
func (s Session) ExpiresAt() (time.Time, bool) {
	claims, err := jwt.Decode(s.Token)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

type Store interface {
	// Load returns ErrNoSession when nothing is stored.
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}
