package event_handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"campusevents/src-client/handler/event_handler"
	"campusevents/src-client/model"
	"campusevents/src-client/session"
	"campusevents/src-client/utils"

	"github.com/uptrace/bun/driver/sqliteshim"
)

type backend struct {
	mu       sync.Mutex
	events   []model.Event
	reorders [][]int64
	created  []model.EventInput
}

func (b *backend) reorderCalls() [][]int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reorders
}

func (b *backend) mux(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events/{$}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		json.NewEncoder(w).Encode(b.events)
	})
	mux.HandleFunc("POST /events/{$}", func(w http.ResponseWriter, r *http.Request) {
		var input model.EventInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Errorf("decode create body: %v", err)
		}
		b.mu.Lock()
		b.created = append(b.created, input)
		b.mu.Unlock()
		start, _ := model.ParseTimestamp(input.DateTime)
		json.NewEncoder(w).Encode(model.Event{ID: 99, Title: input.Title, DateTime: start, Category: input.Category})
	})
	mux.HandleFunc("PUT /events/reorder", func(w http.ResponseWriter, r *http.Request) {
		var ids []int64
		if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
			t.Errorf("decode reorder body: %v", err)
		}
		b.mu.Lock()
		b.reorders = append(b.reorders, ids)
		b.mu.Unlock()
		w.Write([]byte(`{"message":"ok"}`))
	})
	mux.HandleFunc("GET /events/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, event := range b.events {
			if r.PathValue("id") == strconv.FormatInt(event.ID, 10) {
				json.NewEncoder(w).Encode(event)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Event not found"}`))
	})
	// answers with the merged event but leaves the list as it was
	mux.HandleFunc("PUT /events/{id}", func(w http.ResponseWriter, r *http.Request) {
		var patch model.EventPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			t.Errorf("decode update body: %v", err)
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, event := range b.events {
			if r.PathValue("id") == strconv.FormatInt(event.ID, 10) {
				patch.Apply(&event)
				json.NewEncoder(w).Encode(event)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /events/{id}/registrations", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "event_id": 1, "status": "confirmed", "student": {"id": 5, "name": "Lan", "email": "lan@uni.edu"}},
			{"id": 2, "event_id": 1, "status": "waitlisted"}
		]`))
	})
	return mux
}

func fixtureEvents() []model.Event {
	start := model.NewTimestamp(time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC))
	return []model.Event{
		{ID: 1, Title: "Event A", Description: "resume clinic", DateTime: start, Category: model.EventCategoryWorkshop, Capacity: 10},
		{ID: 2, Title: "Event B", Description: "networking", DateTime: start, Category: model.EventCategoryMixer, Capacity: 10},
		{ID: 3, Title: "Event C", Description: "git basics", DateTime: start, Category: model.EventCategoryWorkshop, Capacity: 10},
		{ID: 4, Title: "Event D", Description: "pizza", DateTime: start, Category: model.EventCategoryMixer, Capacity: 10},
	}
}

func newAppState(t *testing.T, role model.Role) (*utils.AppState, *backend, *bytes.Buffer) {
	t.Helper()
	b := &backend{events: fixtureEvents()}
	server := httptest.NewServer(b.mux(t))
	t.Cleanup(server.Close)

	t.Setenv("API_URL", server.URL)
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("DISCORD_APP_TOKEN", "")
	rawDB, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	rawDB.SetMaxOpenConns(1)
	out := &bytes.Buffer{}
	as, err := utils.NewAppStateWith(utils.NewConfig(), rawDB, out)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(as.GracefulShutdown)
	if role != "" {
		if err := as.Sessions.Save(context.Background(), session.Session{Token: "tok", Role: role, Name: "Ada"}); err != nil {
			t.Fatal(err)
		}
	}
	event_handler.Init(as)
	return as, b, out
}

func run(t *testing.T, as *utils.AppState, args ...string) error {
	t.Helper()
	handler, ok := as.GetCmdHandler("event")
	if !ok {
		t.Fatal("event command not registered")
	}
	return handler(context.Background(), args)
}

func TestList(t *testing.T) {
	as, _, out := newAppState(t, model.RoleStudent)
	if err := run(t, as, "list"); err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"Event A", "Event B", "Event C", "Event D"} {
		if !strings.Contains(out.String(), title) {
			t.Errorf("output misses %q:\n%s", title, out)
		}
	}

	out.Reset()
	if err := run(t, as, "list", "--category", "workshop", "--search", "GIT"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Event C") || strings.Contains(out.String(), "Event A") {
		t.Errorf("filtered output:\n%s", out)
	}
	if !strings.Contains(out.String(), "1 of 4 events shown") {
		t.Errorf("missing count line:\n%s", out)
	}
}

func TestListOfflineUsesCache(t *testing.T) {
	as, b, out := newAppState(t, model.RoleStudent)
	if err := run(t, as, "list"); err != nil {
		t.Fatal(err)
	}
	b.mu.Lock()
	b.events = nil
	b.mu.Unlock()

	out.Reset()
	if err := run(t, as, "list", "--offline"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Event D") {
		t.Errorf("offline list should come from the cache:\n%s", out)
	}
}

func TestMovePersistsWhenUnfiltered(t *testing.T) {
	as, b, out := newAppState(t, model.RoleAdmin)
	if err := run(t, as, "move", "4", "2"); err != nil {
		t.Fatal(err)
	}
	calls := b.reorderCalls()
	if len(calls) != 1 || !reflect.DeepEqual(calls[0], []int64{1, 4, 2, 3}) {
		t.Fatalf("reorder calls = %v", calls)
	}
	if !strings.Contains(out.String(), "Order saved.") {
		t.Errorf("output:\n%s", out)
	}
}

func TestMoveSkipsPersistenceWhenFiltered(t *testing.T) {
	as, b, out := newAppState(t, model.RoleFaculty)
	if err := run(t, as, "move", "3", "1", "--category", "workshop"); err != nil {
		t.Fatal(err)
	}
	if calls := b.reorderCalls(); len(calls) != 0 {
		t.Fatalf("no reorder expected while filtered, got %v", calls)
	}
	if !strings.Contains(out.String(), "not saved while a filter is active") {
		t.Errorf("output:\n%s", out)
	}
}

func TestReorder(t *testing.T) {
	as, b, _ := newAppState(t, model.RoleAdmin)
	if err := run(t, as, "reorder", "4", "3", "2", "1"); err != nil {
		t.Fatal(err)
	}
	calls := b.reorderCalls()
	if len(calls) != 1 || !reflect.DeepEqual(calls[0], []int64{4, 3, 2, 1}) {
		t.Fatalf("reorder calls = %v", calls)
	}

	if err := run(t, as, "reorder", "4", "3"); err == nil {
		t.Fatal("a partial order should be rejected")
	}
}

func TestCreate(t *testing.T) {
	as, b, out := newAppState(t, model.RoleFaculty)
	err := run(t, as, "create",
		"--title", "Resume Review",
		"--description", "Bring a printout",
		"--start", "2031-03-01T14:00",
		"--capacity", "20",
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.created) != 1 {
		t.Fatalf("created %d events", len(b.created))
	}
	input := b.created[0]
	if input.DateTime != "2031-03-01T14:00:00Z" || input.RegistrationCap != 20 {
		t.Errorf("input = %+v", input)
	}
	if !strings.Contains(out.String(), `Event #99 "Resume Review" created.`) {
		t.Errorf("output:\n%s", out)
	}
}

func TestCreateRejectsInvalidForm(t *testing.T) {
	as, b, _ := newAppState(t, model.RoleAdmin)
	err := run(t, as, "create", "--title", "Past", "--description", "x", "--start", "2001-01-01T10:00")
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "start") {
		t.Errorf("error should name the start field: %v", err)
	}
	if len(b.created) != 0 {
		t.Error("nothing should reach the backend")
	}
}

func TestCreateForbiddenForStudents(t *testing.T) {
	as, _, _ := newAppState(t, model.RoleStudent)
	err := run(t, as, "create", "--title", "x")
	if !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestNotLoggedIn(t *testing.T) {
	as, _, _ := newAppState(t, "")
	if err := run(t, as, "delete", "1"); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestExportCSV(t *testing.T) {
	as, _, _ := newAppState(t, model.RoleAdmin)
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := run(t, as, "export-csv", "1", "--out", path); err != nil {
		t.Fatal(err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "ID,Name,Email,Status\n1,Lan,lan@uni.edu,confirmed\n2,Unknown,Unknown,waitlisted\n"
	if string(content) != want {
		t.Errorf("csv = %q, want %q", content, want)
	}
}

func TestICS(t *testing.T) {
	as, _, out := newAppState(t, model.RoleStudent)
	if err := run(t, as, "ics", "2", "--out", "-"); err != nil {
		t.Fatal(err)
	}
	for _, line := range []string{"BEGIN:VCALENDAR\r\n", "SUMMARY:Event B\r\n", "DTSTART:20300601T100000Z\r\n"} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("missing %q in:\n%s", line, out)
		}
	}
}

func TestUnknownSubcommand(t *testing.T) {
	as, _, _ := newAppState(t, model.RoleStudent)
	if err := run(t, as, "explode"); !errors.Is(err, utils.ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
	if err := run(t, as); !errors.Is(err, utils.ErrUsage) {
		t.Fatalf("expected ErrUsage, got %v", err)
	}
}

func TestAnnounceWithoutDiscord(t *testing.T) {
	as, _, _ := newAppState(t, model.RoleAdmin)
	if err := run(t, as, "announce", "1"); !errors.Is(err, event_handler.ErrNoDiscord) {
		t.Fatalf("expected ErrNoDiscord, got %v", err)
	}
}

func TestEditMergesIntoLocalList(t *testing.T) {
	as, _, out := newAppState(t, model.RoleAdmin)
	if err := run(t, as, "edit", "2", "--title", "Event B2", "--mode", "virtual"); err != nil {
		t.Fatal(err)
	}
	event, err := as.Events.Get(2)
	if err != nil {
		t.Fatal(err)
	}
	if event.Title != "Event B2" || event.Mode != model.EventModeVirtual {
		t.Errorf("local copy = %q / %q", event.Title, event.Mode)
	}
	if !strings.Contains(out.String(), `Event #2 "Event B2" updated.`) {
		t.Errorf("output:\n%s", out)
	}
}
