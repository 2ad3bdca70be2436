// Package ical writes events as an iCalendar (RFC 5545) file for the
// "add to calendar" action.
package ical

import (
	"fmt"
	"strings"
	"time"

	"campusevents/src-client/model"
)

const ProdID = "-//campusevents//client//EN"

// Used when an event has no end.
const DefaultDuration = time.Hour

type Calendar struct {
	name   string
	events []model.Event
	// DTSTAMP of every event, defaults to now
	stamp time.Time
}

func NewCalendar(name string) *Calendar {
	return &Calendar{name: name}
}

func (c *Calendar) SetStamp(stamp time.Time) {
	c.stamp = stamp
}

func (c *Calendar) AddEvent(event model.Event) error {
	if err := validate(&event); err != nil {
		return fmt.Errorf("(*Calendar).AddEvent: event %d: %w", event.ID, err)
	}
	c.events = append(c.events, event)
	return nil
}

// Marshal the calendar into an iCalendar string.
func (c *Calendar) ToIcal() (string, error) {
	stamp := c.stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	var sb strings.Builder
	writeLine := fold75(sb.WriteString)
	lines := []string{
		"BEGIN:VCALENDAR",
		"PRODID:" + ProdID,
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}
	if c.name != "" {
		lines = append(lines, "X-WR-CALNAME:"+escapeText(c.name))
	}
	for _, line := range lines {
		if err := writeLine(line); err != nil {
			return "", fmt.Errorf("(*Calendar).ToIcal: %w", err)
		}
	}

	for i := range c.events {
		if err := eventToIcal(writeLine, &c.events[i], stamp); err != nil {
			return "", fmt.Errorf("(*Calendar).ToIcal: event %d: %w", c.events[i].ID, err)
		}
	}
	if err := writeLine("END:VCALENDAR"); err != nil {
		return "", fmt.Errorf("(*Calendar).ToIcal: %w", err)
	}
	return sb.String(), nil
}

// FileName is the name offered when saving a single event.
func FileName(event *model.Event) string {
	return fmt.Sprintf("event_%d.ics", event.ID)
}

// EventFile returns a one-event calendar ready to be saved.
func EventFile(event model.Event) (string, error) {
	cal := NewCalendar(event.Title)
	if err := cal.AddEvent(event); err != nil {
		return "", err
	}
	return cal.ToIcal()
}
