package model

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type EventMode string

const (
	EventModeInPerson EventMode = "in_person"
	EventModeVirtual  EventMode = "virtual"
	EventModeHybrid   EventMode = "hybrid"
)

func (m EventMode) Valid() bool {
	switch m {
	case EventModeInPerson, EventModeVirtual, EventModeHybrid:
		return true
	}
	return false
}

type EventCategory string

const (
	EventCategoryWorkshop     EventCategory = "workshop"
	EventCategoryCareerFair   EventCategory = "career_fair"
	EventCategoryMixer        EventCategory = "mixer"
	EventCategoryTechTalk     EventCategory = "tech_talk"
	EventCategoryCompetition  EventCategory = "competition"
	EventCategorySponsorEvent EventCategory = "sponsor_event"
)

// CategoryAll is the filter value meaning "no category constraint".
const CategoryAll = "all"

var EventCategories = []EventCategory{
	EventCategoryWorkshop,
	EventCategoryCareerFair,
	EventCategoryMixer,
	EventCategoryTechTalk,
	EventCategoryCompetition,
	EventCategorySponsorEvent,
}

func (c EventCategory) Valid() bool {
	for _, known := range EventCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Event struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DateTime    Timestamp     `json:"date_time"`
	EndDateTime *Timestamp    `json:"end_date_time,omitempty"`
	Mode        EventMode     `json:"mode"`
	Category    EventCategory `json:"category"`

	Venue    string `json:"venue,omitempty"`
	Room     string `json:"room,omitempty"`
	ImageURL string `json:"image_url,omitempty"`

	Capacity           int      `json:"capacity"`
	RegistrationCap    int      `json:"registration_cap"`
	RegistrationsCount *int     `json:"registrations_count,omitempty"`
	AverageRating      *float64 `json:"average_rating,omitempty"`
	FeedbackCount      *int     `json:"feedback_count,omitempty"`
	Position           *int     `json:"position,omitempty"`

	Visibility     string `json:"visibility,omitempty"`
	SponsorCompany string `json:"sponsor_company,omitempty"`
	CreatedByID    *int64 `json:"created_by_id,omitempty"`
	IsActive       bool   `json:"is_active"`
	IsFrozen       bool   `json:"is_frozen"`
}

// Remaining seats and whether the event is full, based on the capacity the
// backend reports. Never negative.
func (e *Event) Availability() (int, bool) {
	count := 0
	if e.RegistrationsCount != nil {
		count = *e.RegistrationsCount
	}
	return Availability(e.Capacity, count)
}

func Availability(capacity, registrations int) (int, bool) {
	remaining := capacity - registrations
	if remaining < 0 {
		remaining = 0
	}
	return remaining, remaining == 0
}

// Human-readable availability line, e.g. "12 spots remaining".
func (e *Event) AvailabilityText() string {
	remaining, full := e.Availability()
	if full {
		return "Full (Waitlist Available)"
	}
	return fmt.Sprintf("%d spots remaining", remaining)
}

func (e *Event) ToDiscordEmbed() *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Start Date",
				Value:  fmt.Sprintf("<t:%d:f>", e.DateTime.Unix()),
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("event #%d", e.ID),
		},
	}
	if e.EndDateTime != nil && !e.EndDateTime.IsZero() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "End Date",
			Value:  fmt.Sprintf("<t:%d:f>", e.EndDateTime.Unix()),
			Inline: true,
		})
	}
	if location := e.Location(); location != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Location",
			Value: location,
		})
	}
	return embed
}

// venue and room joined, whichever are set
func (e *Event) Location() string {
	parts := make([]string, 0, 2)
	if e.Venue != "" {
		parts = append(parts, e.Venue)
	}
	if e.Room != "" {
		parts = append(parts, e.Room)
	}
	return strings.Join(parts, ", ")
}

// EventInput is the body of POST /events/.
type EventInput struct {
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	DateTime        string        `json:"date_time"`
	EndDateTime     *string       `json:"end_date_time"`
	Mode            EventMode     `json:"mode"`
	Category        EventCategory `json:"category"`
	Venue           string        `json:"venue,omitempty"`
	Room            string        `json:"room,omitempty"`
	ImageURL        string        `json:"image_url,omitempty"`
	Capacity        int           `json:"capacity"`
	RegistrationCap int           `json:"registration_cap"`
}

// EventPatch is a partial update; nil fields are left untouched. It is both
// the PUT /events/{id} body and the local merge applied to cached copies.
type EventPatch struct {
	Title           *string        `json:"title,omitempty"`
	Description     *string        `json:"description,omitempty"`
	DateTime        *Timestamp     `json:"date_time,omitempty"`
	EndDateTime     *Timestamp     `json:"end_date_time,omitempty"`
	Mode            *EventMode     `json:"mode,omitempty"`
	Category        *EventCategory `json:"category,omitempty"`
	Venue           *string        `json:"venue,omitempty"`
	Room            *string        `json:"room,omitempty"`
	ImageURL        *string        `json:"image_url,omitempty"`
	Capacity        *int           `json:"capacity,omitempty"`
	RegistrationCap *int           `json:"registration_cap,omitempty"`
	Visibility      *string        `json:"visibility,omitempty"`
	IsActive        *bool          `json:"is_active,omitempty"`
	IsFrozen        *bool          `json:"is_frozen,omitempty"`
}

func (p *EventPatch) IsEmpty() bool {
	return *p == EventPatch{}
}

// Merge the patch into e.
func (p *EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.DateTime != nil {
		e.DateTime = *p.DateTime
	}
	if p.EndDateTime != nil {
		end := *p.EndDateTime
		e.EndDateTime = &end
	}
	if p.Mode != nil {
		e.Mode = *p.Mode
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Venue != nil {
		e.Venue = *p.Venue
	}
	if p.Room != nil {
		e.Room = *p.Room
	}
	if p.ImageURL != nil {
		e.ImageURL = *p.ImageURL
	}
	if p.Capacity != nil {
		e.Capacity = *p.Capacity
	}
	if p.RegistrationCap != nil {
		e.RegistrationCap = *p.RegistrationCap
	}
	if p.Visibility != nil {
		e.Visibility = *p.Visibility
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	if p.IsFrozen != nil {
		e.IsFrozen = *p.IsFrozen
	}
}
