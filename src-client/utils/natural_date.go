package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNoDate = errors.New("no date or time found")

// ParseWhen reads phrases like "next friday at 3pm" relative to now, in the
// configured timezone. The result is truncated to the minute, the precision
// of the event form.
func (as *AppState) ParseWhen(text string, now time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, fmt.Errorf("(*AppState).ParseWhen: %w", ErrNoDate)
	}
	result, err := as.When.Parse(text, now.In(as.Config.GetLocation()))
	if err != nil {
		return time.Time{}, fmt.Errorf("(*AppState).ParseWhen: %w", err)
	}
	if result == nil {
		return time.Time{}, fmt.Errorf("(*AppState).ParseWhen: %w: %q", ErrNoDate, text)
	}
	return result.Time.Truncate(time.Minute), nil
}
