package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"campusevents/src-client/model"
)

func TestTimestampNaive(t *testing.T) {
	var event model.Event
	if err := json.Unmarshal([]byte(`{"id": 1, "title": "a", "date_time": "2025-06-01T10:00:00"}`), &event); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	if !event.DateTime.Equal(want) {
		t.Errorf("date_time = %v, want %v", event.DateTime, want)
	}
	if event.EndDateTime != nil {
		t.Error("end_date_time should be nil when absent")
	}
}

func TestTimestampOffset(t *testing.T) {
	ts, err := model.ParseTimestamp("2025-06-01T10:00:00+02:00")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Hour() != 8 || ts.Location() != time.UTC {
		t.Errorf("expected 08:00 UTC, got %v", ts.Time)
	}
	if _, err := model.ParseTimestamp("tomorrow"); err == nil {
		t.Error("expected an error for garbage input")
	}
}

func TestTimestampNull(t *testing.T) {
	var event model.Event
	if err := json.Unmarshal([]byte(`{"date_time": null, "end_date_time": null}`), &event); err != nil {
		t.Fatal(err)
	}
	if !event.DateTime.IsZero() {
		t.Error("null date_time should be zero")
	}
}

func TestAvailability(t *testing.T) {
	for _, tc := range []struct {
		capacity, count, remaining int
		full                       bool
	}{
		{100, 100, 0, true},
		{100, 120, 0, true},
		{100, 40, 60, false},
		{0, 0, 0, true},
	} {
		remaining, full := model.Availability(tc.capacity, tc.count)
		if remaining != tc.remaining || full != tc.full {
			t.Errorf("Availability(%d, %d) = %d, %v; want %d, %v",
				tc.capacity, tc.count, remaining, full, tc.remaining, tc.full)
		}
	}

	count := 100
	event := model.Event{Capacity: 100, RegistrationsCount: &count}
	if got := event.AvailabilityText(); got != "Full (Waitlist Available)" {
		t.Errorf("unexpected text %q", got)
	}
	event.RegistrationsCount = nil
	if got := event.AvailabilityText(); got != "100 spots remaining" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestEventPatchApply(t *testing.T) {
	event := model.Event{ID: 7, Title: "old", Description: "keep", Category: model.EventCategoryMixer}
	title := "new"
	category := model.EventCategoryTechTalk
	patch := model.EventPatch{Title: &title, Category: &category}
	if patch.IsEmpty() {
		t.Fatal("patch should not be empty")
	}
	patch.Apply(&event)
	if event.Title != "new" || event.Category != model.EventCategoryTechTalk {
		t.Errorf("patch not applied: %+v", event)
	}
	if event.Description != "keep" || event.ID != 7 {
		t.Errorf("untouched fields changed: %+v", event)
	}

	body, err := json.Marshal(patch)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != `{"title":"new","category":"tech_talk"}` {
		t.Errorf("unexpected patch body %s", body)
	}
	if !(&model.EventPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
}

func TestParseRole(t *testing.T) {
	if role, err := model.ParseRole("judge"); err != nil || role != model.RoleJudge {
		t.Errorf("ParseRole(judge) = %q, %v", role, err)
	}
	if _, err := model.ParseRole("superuser"); err == nil {
		t.Error("expected error for unknown role")
	}
}
