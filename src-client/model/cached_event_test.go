package model_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"campusevents/src-client/model"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	bundb := bun.NewDB(db, sqlitedialect.New())
	t.Cleanup(func() { bundb.Close() })
	if err := model.CreateSchema(context.Background(), bundb); err != nil {
		t.Fatal(err)
	}
	return bundb
}

func TestEventCache(t *testing.T) {
	ctx := context.Background()
	cache := model.EventCache{DB: newTestDB(t)}

	start := model.NewTimestamp(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	events := []model.Event{
		{ID: 3, Title: "C", DateTime: start},
		{ID: 1, Title: "A", DateTime: start},
		{ID: 2, Title: "B", DateTime: start},
	}
	if err := cache.Save(ctx, events); err != nil {
		t.Fatal(err)
	}

	// case: order is preserved
	loaded, err := cache.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 3 {
		t.Fatalf("expected 3 events, got %d", len(loaded))
	}
	for i, id := range []int64{3, 1, 2} {
		if loaded[i].ID != id {
			t.Errorf("position %d: got id %d, want %d", i, loaded[i].ID, id)
		}
	}
	if !loaded[0].DateTime.Equal(start.Time) {
		t.Errorf("date_time not preserved: %v", loaded[0].DateTime)
	}

	// case: save overwrites the previous list
	if err := cache.Save(ctx, events[:1]); err != nil {
		t.Fatal(err)
	}
	loaded, err = cache.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].ID != 3 {
		t.Errorf("expected only event 3, got %+v", loaded)
	}

	// case: empty list
	if err := cache.Save(ctx, nil); err != nil {
		t.Fatal(err)
	}
	loaded, err = cache.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty cache, got %d", len(loaded))
	}
}
