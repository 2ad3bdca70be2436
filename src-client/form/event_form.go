package form

import (
	"fmt"
	"strings"
	"time"

	"campusevents/src-client/model"
)

type EventForm struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description" validate:"required"`
	Start       string `form:"start" validate:"required,datetime=2006-01-02T15:04"`
	End         string `form:"end" validate:"omitempty,datetime=2006-01-02T15:04"`
	Mode        string `form:"mode" validate:"required,oneof=in_person virtual hybrid"`
	Category    string `form:"category" validate:"required,oneof=workshop career_fair mixer tech_talk competition sponsor_event"`
	Venue       string `form:"venue" validate:"max=200"`
	Room        string `form:"room" validate:"max=100"`
	ImageURL    string `form:"image_url" validate:"omitempty,url"`
	Capacity    int    `form:"capacity" validate:"gte=1"`
	// 0 means same as capacity
	RegistrationCap int `form:"registration_cap" validate:"gte=0"`
}

// NewEventForm returns the defaults of an empty create form.
func NewEventForm() EventForm {
	return EventForm{
		Mode:     string(model.EventModeInPerson),
		Category: string(model.EventCategoryWorkshop),
		Capacity: 100,
	}
}

// EventFormFrom pre-fills an edit form from an existing event.
func EventFormFrom(event *model.Event, loc *time.Location) EventForm {
	f := EventForm{
		Title:           event.Title,
		Description:     event.Description,
		Start:           FormatLocal(event.DateTime.Time, loc),
		Mode:            string(event.Mode),
		Category:        string(event.Category),
		Venue:           event.Venue,
		Room:            event.Room,
		ImageURL:        event.ImageURL,
		Capacity:        event.Capacity,
		RegistrationCap: event.RegistrationCap,
	}
	if event.EndDateTime != nil && !event.EndDateTime.IsZero() {
		f.End = FormatLocal(event.EndDateTime.Time, loc)
	}
	return f
}

func (f *EventForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	f.Venue = strings.TrimSpace(f.Venue)
	f.Room = strings.TrimSpace(f.Room)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
}

// Validate checks the field rules, then that the event starts after now and
// ends after it starts. Only creation rejects past dates, an edit of a past
// event passes allowPast.
func (f *EventForm) Validate(now time.Time, loc *time.Location, allowPast bool) error {
	f.normalize()
	verr := check(f)

	if _, failed := verr.Fields["start"]; !failed {
		start, err := ParseLocal(f.Start, loc)
		switch {
		case err != nil:
			verr.add("start", "datetime")
		case !allowPast && start.Before(now):
			verr.add("start", "future")
		case f.End != "":
			if _, failed := verr.Fields["end"]; failed {
				break
			}
			if end, err := ParseLocal(f.End, loc); err == nil && !end.After(start) {
				verr.add("end", "gtfield=start")
			}
		}
	}
	return verr.orNil()
}

func (f *EventForm) registrationCap() int {
	if f.RegistrationCap == 0 {
		return f.Capacity
	}
	return f.RegistrationCap
}

// Input builds the create body. Call Validate first.
func (f *EventForm) Input(loc *time.Location) (model.EventInput, error) {
	start, err := ToISO(f.Start, loc)
	if err != nil {
		return model.EventInput{}, fmt.Errorf("(*EventForm).Input: %w", err)
	}
	input := model.EventInput{
		Title:           f.Title,
		Description:     f.Description,
		DateTime:        start,
		Mode:            model.EventMode(f.Mode),
		Category:        model.EventCategory(f.Category),
		Venue:           f.Venue,
		Room:            f.Room,
		ImageURL:        f.ImageURL,
		Capacity:        f.Capacity,
		RegistrationCap: f.registrationCap(),
	}
	if f.End != "" {
		end, err := ToISO(f.End, loc)
		if err != nil {
			return model.EventInput{}, fmt.Errorf("(*EventForm).Input: %w", err)
		}
		input.EndDateTime = &end
	}
	return input, nil
}

// Patch builds the update body carrying every field of the form.
func (f *EventForm) Patch(loc *time.Location) (model.EventPatch, error) {
	start, err := ParseLocal(f.Start, loc)
	if err != nil {
		return model.EventPatch{}, fmt.Errorf("(*EventForm).Patch: %w", err)
	}
	startTs := model.NewTimestamp(start)
	mode := model.EventMode(f.Mode)
	category := model.EventCategory(f.Category)
	registrationCap := f.registrationCap()
	patch := model.EventPatch{
		Title:           &f.Title,
		Description:     &f.Description,
		DateTime:        &startTs,
		Mode:            &mode,
		Category:        &category,
		Venue:           &f.Venue,
		Room:            &f.Room,
		ImageURL:        &f.ImageURL,
		Capacity:        &f.Capacity,
		RegistrationCap: &registrationCap,
	}
	if f.End != "" {
		end, err := ParseLocal(f.End, loc)
		if err != nil {
			return model.EventPatch{}, fmt.Errorf("(*EventForm).Patch: %w", err)
		}
		endTs := model.NewTimestamp(end)
		patch.EndDateTime = &endTs
	}
	return patch, nil
}
