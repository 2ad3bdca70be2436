package api

import (
	"context"
	"fmt"

	"campusevents/src-client/model"
)

func (c *Client) RecruiterEvents(ctx context.Context) ([]model.Event, error) {
	events := make([]model.Event, 0)
	if err := c.get(ctx, "/recruiter/events", &events); err != nil {
		return nil, fmt.Errorf("(*Client).RecruiterEvents: %w", err)
	}
	return events, nil
}

func (c *Client) EventStudents(ctx context.Context, eventID int64) ([]model.Registration, error) {
	registrations := make([]model.Registration, 0)
	if err := c.get(ctx, fmt.Sprintf("/recruiter/events/%d/students", eventID), &registrations); err != nil {
		return nil, fmt.Errorf("(*Client).EventStudents: %w", err)
	}
	return registrations, nil
}
