package form

import (
	"fmt"
	"time"

	"campusevents/src-client/model"
)

// LocalLayout is what a datetime-local input holds: minutes precision, no
// zone.
const LocalLayout = "2006-01-02T15:04"

func ParseLocal(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(LocalLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("ParseLocal: %w", err)
	}
	return t, nil
}

func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(LocalLayout)
}

// ToISO converts a local input value to the RFC 3339 UTC string sent to the
// backend.
func ToISO(value string, loc *time.Location) (string, error) {
	t, err := ParseLocal(value, loc)
	if err != nil {
		return "", fmt.Errorf("ToISO: %w", err)
	}
	return t.UTC().Format(time.RFC3339), nil
}

// FromISO is the reverse of ToISO, for pre-filling an edit form.
func FromISO(value string, loc *time.Location) (string, error) {
	ts, err := model.ParseTimestamp(value)
	if err != nil {
		return "", fmt.Errorf("FromISO: %w", err)
	}
	return FormatLocal(ts.Time, loc), nil
}
