package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusevents/src-client/model"

	"github.com/uptrace/bun"
)

// BunStore keeps the session in the local SQLite database so it survives
// between CLI invocations.
type BunStore struct {
	db bun.IDB
}

func NewBunStore(db bun.IDB) *BunStore {
	return &BunStore{db: db}
}

func (b *BunStore) Load(ctx context.Context) (Session, error) {
	row := new(model.Session)
	if err := b.db.NewSelect().
		Model(row).
		Where("id = ?", model.CurrentSessionKey).
		Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNoSession
		}
		return Session{}, fmt.Errorf("(*BunStore).Load: %w", err)
	}
	return Session{
		Token: row.Token,
		Role:  row.Role,
		Name:  row.Name,
	}, nil
}

func (b *BunStore) Save(ctx context.Context, s Session) error {
	if s.IsZero() {
		return fmt.Errorf("(*BunStore).Save: token is blank")
	}
	row := &model.Session{
		ID:        model.CurrentSessionKey,
		Token:     s.Token,
		Role:      s.Role,
		Name:      s.Name,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := b.db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("token = EXCLUDED.token").
		Set("role = EXCLUDED.role").
		Set("name = EXCLUDED.name").
		Set("created_at = EXCLUDED.created_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("(*BunStore).Save: %w", err)
	}
	return nil
}

func (b *BunStore) Clear(ctx context.Context) error {
	if _, err := b.db.NewDelete().
		Model((*model.Session)(nil)).
		Where("id = ?", model.CurrentSessionKey).
		Exec(ctx); err != nil {
		return fmt.Errorf("(*BunStore).Clear: %w", err)
	}
	return nil
}
