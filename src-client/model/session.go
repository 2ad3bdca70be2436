package model

import (
	"time"

	"github.com/uptrace/bun"
)

// The single row key; the client only ever holds one session.
const CurrentSessionKey = "current"

// Persisted copy of the login response, the client's "local storage".
type Session struct {
	bun.BaseModel `bun:"table:sessions"`

	ID        string    `bun:"id,pk"`              // required
	Token     string    `bun:"token,notnull"`      // required
	Role      Role      `bun:"role,notnull"`       // required
	Name      string    `bun:"name"`
	CreatedAt time.Time `bun:"created_at,notnull"` // required
}
