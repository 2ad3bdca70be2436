package jwt

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
)

// Claims the backend puts into its access tokens.
type Claims struct {
	Role string `json:"role"`
	jwtlib.RegisteredClaims
}

// Expired reports whether the token's exp claim is before now. A token with
// no exp claim never expires.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Time.Before(now)
}
