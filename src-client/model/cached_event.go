package model

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Last canonical event list fetched from the backend, kept so the list can
// be shown offline. Position is the canonical index.
type CachedEvent struct {
	bun.BaseModel `bun:"table:cached_events"`

	ID       int64     `bun:"id,pk"`
	Position int       `bun:"position,notnull"`
	Payload  string    `bun:"payload,notnull"` // JSON encoded Event
	CachedAt time.Time `bun:"cached_at,notnull"`
}

// EventCache stores the canonical list in the local database.
type EventCache struct {
	DB bun.IDB
}

// Replace the whole cached list in one transaction.
func (c *EventCache) Save(ctx context.Context, events []Event) error {
	now := time.Now().UTC()
	rows := make([]CachedEvent, 0, len(events))
	for i, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("(*EventCache).Save: %w", err)
		}
		rows = append(rows, CachedEvent{
			ID:       event.ID,
			Position: i,
			Payload:  string(payload),
			CachedAt: now,
		})
	}

	if err := c.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*CachedEvent)(nil)).
			Where("1 = 1").
			Exec(ctx); err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		_, err := tx.NewInsert().
			Model(&rows).
			Exec(ctx)
		return err
	}); err != nil {
		return fmt.Errorf("(*EventCache).Save: %w", err)
	}
	return nil
}

// Load the cached list in canonical order.
func (c *EventCache) Load(ctx context.Context) ([]Event, error) {
	rows := make([]CachedEvent, 0)
	if err := c.DB.NewSelect().
		Model(&rows).
		Order("position ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*EventCache).Load: %w", err)
	}
	events := make([]Event, 0, len(rows))
	for _, row := range rows {
		var event Event
		if err := json.Unmarshal([]byte(row.Payload), &event); err != nil {
			return nil, fmt.Errorf("(*EventCache).Load: event %d: %w", row.ID, err)
		}
		events = append(events, event)
	}
	return events, nil
}
