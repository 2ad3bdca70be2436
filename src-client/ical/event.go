package ical

import (
	"fmt"
	"strings"
	"time"

	"campusevents/src-client/model"
)

func validate(event *model.Event) error {
	if event.ID == 0 {
		return ErrIDNotSet
	}
	if strings.TrimSpace(event.Title) == "" {
		return ErrSummaryNotSet
	}
	if event.DateTime.IsZero() {
		return ErrStartDateInvalid
	}
	if end := endOf(event); !end.After(event.DateTime.Time) {
		return ErrStartDateAfterEndDate
	}
	return nil
}

func endOf(event *model.Event) time.Time {
	if event.EndDateTime == nil || event.EndDateTime.IsZero() {
		return event.DateTime.Add(DefaultDuration)
	}
	return event.EndDateTime.Time
}

func eventToIcal(writeLine func(string) error, event *model.Event, stamp time.Time) error {
	startDateStr, err := timeToIcalDatetime(event.DateTime.Time)
	if err != nil {
		return err
	}
	endDateStr, err := timeToIcalDatetime(endOf(event))
	if err != nil {
		return err
	}
	stampStr, err := timeToIcalDatetime(stamp)
	if err != nil {
		return err
	}

	lines := []string{
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:event-%d@campusevents", event.ID),
		"DTSTAMP:" + stampStr,
		"DTSTART:" + startDateStr,
		"DTEND:" + endDateStr,
		"SUMMARY:" + escapeText(event.Title),
	}
	if event.Description != "" {
		lines = append(lines, "DESCRIPTION:"+escapeText(event.Description))
	}
	if location := event.Location(); location != "" {
		lines = append(lines, "LOCATION:"+escapeText(location))
	}
	if event.Category != "" {
		lines = append(lines, "CATEGORIES:"+escapeText(string(event.Category)))
	}
	lines = append(lines, "END:VEVENT")

	for _, line := range lines {
		if err := writeLine(line); err != nil {
			return err
		}
	}
	return nil
}
