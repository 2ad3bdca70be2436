package store_test

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"campusevents/src-client/model"
	"campusevents/src-client/store"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type stubLoader struct {
	events []model.Event
	err    error
}

func (l *stubLoader) ListEvents(ctx context.Context) ([]model.Event, error) {
	return l.events, l.err
}

func event(id int64, title string, category model.EventCategory) model.Event {
	return model.Event{ID: id, Title: title, Category: category}
}

func fixture() []model.Event {
	return []model.Event{
		event(1, "Go Workshop", model.EventCategoryWorkshop),
		event(2, "Spring Career Fair", model.EventCategoryCareerFair),
		event(3, "Rust workshop", model.EventCategoryWorkshop),
		event(4, "Robotics Hackathon", model.EventCategoryCompetition),
	}
}

func newLoaded(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(&stubLoader{events: fixture()})
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	return s
}

// the view must always be the filter re-run over the canonical list
func assertConsistent(t *testing.T, s *store.Store) {
	t.Helper()
	term, category := s.Filter()
	want := store.ApplyFilter(s.Events(), term, category)
	if got := s.View(); !reflect.DeepEqual(store.IDs(got), store.IDs(want)) {
		t.Fatalf("view %v drifted from filter result %v", store.IDs(got), store.IDs(want))
	}
}

func TestApplyFilter(t *testing.T) {
	events := fixture()
	events[3].Description = "build a WORKSHOP robot"

	tests := []struct {
		name     string
		term     string
		category string
		want     []int64
	}{
		{"no filter", "", model.CategoryAll, []int64{1, 2, 3, 4}},
		{"empty category", "", "", []int64{1, 2, 3, 4}},
		{"case-insensitive title or description", "workshop", "all", []int64{1, 3, 4}},
		{"category only", "", "workshop", []int64{1, 3}},
		{"term and category", "rust", "workshop", []int64{3}},
		{"no match", "nothing", "all", []int64{}},
		{"leading space is part of the term", " fair", "all", []int64{2}},
		{"trailing space is part of the term", "fair ", "all", []int64{}},
		{"whitespace term", " ", "all", []int64{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.IDs(store.ApplyFilter(events, tt.term, tt.category))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArrayMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"backward", 3, 1, []string{"A", "D", "B", "C"}},
		{"forward", 0, 2, []string{"B", "C", "A", "D"}},
		{"same index", 2, 2, []string{"A", "B", "C", "D"}},
		{"out of range", 5, 0, []string{"A", "B", "C", "D"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := []string{"A", "B", "C", "D"}
			got := store.ArrayMove(input, tt.from, tt.to)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(input, []string{"A", "B", "C", "D"}) {
				t.Errorf("input was modified: %v", input)
			}
		})
	}
}

func TestMutationSequenceKeepsViewConsistent(t *testing.T) {
	s := newLoaded(t)
	s.SetFilter("workshop", "workshop")
	assertConsistent(t, s)

	// a created event only shows when it matches
	s.ApplyCreate(event(5, "Mixer night", model.EventCategoryMixer))
	assertConsistent(t, s)
	s.ApplyCreate(event(6, "Docker workshop", model.EventCategoryWorkshop))
	assertConsistent(t, s)
	if got := store.IDs(s.View()); !reflect.DeepEqual(got, []int64{6, 1, 3}) {
		t.Errorf("view = %v", got)
	}
	if got := store.IDs(s.Events()); got[0] != 6 || got[1] != 5 {
		t.Errorf("created events should be prepended, got %v", got)
	}

	// a mutation can move an event out of the view
	talk := model.EventCategoryTechTalk
	if err := s.ApplyMutation(1, model.EventPatch{Category: &talk}); err != nil {
		t.Fatal(err)
	}
	assertConsistent(t, s)

	// and back into it
	title := "Kubernetes workshop"
	workshop := model.EventCategoryWorkshop
	if err := s.ApplyMutation(2, model.EventPatch{Title: &title, Category: &workshop}); err != nil {
		t.Fatal(err)
	}
	assertConsistent(t, s)
	if got := store.IDs(s.View()); !reflect.DeepEqual(got, []int64{6, 2, 3}) {
		t.Errorf("view = %v", got)
	}

	if err := s.ApplyDelete(3); err != nil {
		t.Fatal(err)
	}
	assertConsistent(t, s)

	s.SetFilter("", model.CategoryAll)
	assertConsistent(t, s)
	if got := len(s.View()); got != len(s.Events()) {
		t.Errorf("unfiltered view has %d events, canonical has %d", got, len(s.Events()))
	}
}

func TestNotFound(t *testing.T) {
	s := newLoaded(t)
	if err := s.ApplyMutation(99, model.EventPatch{}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ApplyMutation: %v", err)
	}
	if err := s.ApplyDelete(99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ApplyDelete: %v", err)
	}
	if _, _, err := s.ApplyMove(99, 1); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ApplyMove: %v", err)
	}
	if _, err := s.Get(99); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get: %v", err)
	}
}

func TestApplyMove(t *testing.T) {
	s := newLoaded(t)

	ids, unfiltered, err := s.ApplyMove(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []int64{1, 4, 2, 3}) {
		t.Errorf("ids = %v", ids)
	}
	if !unfiltered {
		t.Error("expected the move to report an empty filter")
	}
	for i, e := range s.Events() {
		if e.Position == nil || *e.Position != i {
			t.Errorf("event %d has position %v, want %d", e.ID, e.Position, i)
		}
	}
	assertConsistent(t, s)
}

func TestApplyMoveUnderFilter(t *testing.T) {
	s := newLoaded(t)
	s.SetFilter("", "workshop")
	// view is [1 3], move 3 over 1
	_, unfiltered, err := s.ApplyMove(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if unfiltered {
		t.Error("a category filter is active")
	}
	if got := store.IDs(s.View()); !reflect.DeepEqual(got, []int64{3, 1}) {
		t.Errorf("view = %v", got)
	}
	assertConsistent(t, s)
}

func TestApplyReorder(t *testing.T) {
	// case: full permutation
	s := newLoaded(t)
	if err := s.ApplyReorder([]int64{4, 3, 2, 1}); err != nil {
		t.Fatal(err)
	}
	if got := store.IDs(s.Events()); !reflect.DeepEqual(got, []int64{4, 3, 2, 1}) {
		t.Errorf("canonical = %v", got)
	}
	assertConsistent(t, s)

	// case: permutation of the view, hidden events keep their slots
	s = newLoaded(t)
	s.SetFilter("", "workshop")
	if err := s.ApplyReorder([]int64{3, 1}); err != nil {
		t.Fatal(err)
	}
	if got := store.IDs(s.Events()); !reflect.DeepEqual(got, []int64{3, 2, 1, 4}) {
		t.Errorf("canonical = %v", got)
	}
	assertConsistent(t, s)

	// case: neither
	for _, ids := range [][]int64{{1, 2}, {1, 1, 2, 3}, {1, 2, 3, 99}} {
		if err := s.ApplyReorder(ids); !errors.Is(err, store.ErrInvalidOrder) {
			t.Errorf("%v: expected ErrInvalidOrder, got %v", ids, err)
		}
	}
}

func TestLoadFailureKeepsCanonical(t *testing.T) {
	loader := &stubLoader{events: fixture()}
	s := store.New(loader)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	loader.err = errors.New("connection refused")
	loader.events = nil
	if err := s.Load(ctx); err == nil {
		t.Fatal("expected an error")
	}
	if got := len(s.Events()); got != 4 {
		t.Errorf("expected the previous 4 events, got %d", got)
	}
}

func TestLoadCached(t *testing.T) {
	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()
	ctx := context.Background()
	if err := model.CreateSchema(ctx, db); err != nil {
		t.Fatal(err)
	}
	cache := &model.EventCache{DB: db}

	online := store.New(&stubLoader{events: fixture()}, store.WithCache(cache))
	if err := online.Load(ctx); err != nil {
		t.Fatal(err)
	}

	offline := store.New(&stubLoader{err: errors.New("offline")}, store.WithCache(cache))
	if err := offline.LoadCached(ctx); err != nil {
		t.Fatal(err)
	}
	if got := store.IDs(offline.Events()); !reflect.DeepEqual(got, []int64{1, 2, 3, 4}) {
		t.Errorf("cached ids = %v", got)
	}

	if err := store.New(nil).LoadCached(ctx); err == nil {
		t.Error("expected an error without a cache")
	}
}
