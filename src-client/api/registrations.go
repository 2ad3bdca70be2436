package api

import (
	"context"
	"fmt"

	"campusevents/src-client/model"
)

func (c *Client) Register(ctx context.Context, eventID int64) (*model.Registration, error) {
	registration := new(model.Registration)
	if err := c.post(ctx, eventPath(eventID, "/register"), nil, registration); err != nil {
		return nil, fmt.Errorf("(*Client).Register: %w", err)
	}
	return registration, nil
}

func (c *Client) Unregister(ctx context.Context, eventID int64) error {
	if err := c.delete(ctx, eventPath(eventID, "/register")); err != nil {
		return fmt.Errorf("(*Client).Unregister: %w", err)
	}
	return nil
}

func (c *Client) MyRegistrations(ctx context.Context) ([]model.Registration, error) {
	registrations := make([]model.Registration, 0)
	if err := c.get(ctx, "/registrations/me", &registrations); err != nil {
		return nil, fmt.Errorf("(*Client).MyRegistrations: %w", err)
	}
	return registrations, nil
}

func (c *Client) SubmitFeedback(ctx context.Context, registrationID int64, feedback model.FeedbackInput) error {
	path := fmt.Sprintf("/registrations/%d/feedback", registrationID)
	if err := c.post(ctx, path, feedback, nil); err != nil {
		return fmt.Errorf("(*Client).SubmitFeedback: %w", err)
	}
	return nil
}
