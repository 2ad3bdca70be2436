package api

import (
	"context"
	"fmt"
	"net/url"

	"campusevents/src-client/model"
)

func (c *Client) JudgeEvents(ctx context.Context) ([]model.Event, error) {
	events := make([]model.Event, 0)
	if err := c.get(ctx, "/judge/events", &events); err != nil {
		return nil, fmt.Errorf("(*Client).JudgeEvents: %w", err)
	}
	return events, nil
}

// Roster lists an event's registrations, narrowed to students with the
// given skill when skill is not empty.
func (c *Client) Roster(ctx context.Context, eventID int64, skill string) ([]model.Registration, error) {
	path := fmt.Sprintf("/judge/events/%d/roster", eventID)
	if skill != "" {
		path += "?" + url.Values{"skill": {skill}}.Encode()
	}
	registrations := make([]model.Registration, 0)
	if err := c.get(ctx, path, &registrations); err != nil {
		return nil, fmt.Errorf("(*Client).Roster: %w", err)
	}
	return registrations, nil
}

// StudentProfile is the public profile of a participant, skills and
// resumes included.
func (c *Client) StudentProfile(ctx context.Context, studentID int64) (*model.User, error) {
	user := new(model.User)
	if err := c.get(ctx, fmt.Sprintf("/judge/students/%d/profile", studentID), user); err != nil {
		return nil, fmt.Errorf("(*Client).StudentProfile: %w", err)
	}
	return user, nil
}
