package api

import (
	"context"
	"errors"
	"fmt"

	"campusevents/src-client/model"
)

func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	events := make([]model.Event, 0)
	if err := c.get(ctx, "/events/", &events); err != nil {
		return nil, fmt.Errorf("(*Client).ListEvents: %w", err)
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event := new(model.Event)
	if err := c.get(ctx, eventPath(id, ""), event); err != nil {
		return nil, fmt.Errorf("(*Client).GetEvent: %w", err)
	}
	return event, nil
}

func (c *Client) CreateEvent(ctx context.Context, input model.EventInput) (*model.Event, error) {
	event := new(model.Event)
	if err := c.post(ctx, "/events/", input, event); err != nil {
		return nil, fmt.Errorf("(*Client).CreateEvent: %w", err)
	}
	return event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, patch model.EventPatch) (*model.Event, error) {
	event := new(model.Event)
	if err := c.put(ctx, eventPath(id, ""), patch, event); err != nil {
		return nil, fmt.Errorf("(*Client).UpdateEvent: %w", err)
	}
	return event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	if err := c.delete(ctx, eventPath(id, "")); err != nil {
		return fmt.Errorf("(*Client).DeleteEvent: %w", err)
	}
	return nil
}

// ReorderEvents sends the complete ordered id list.
func (c *Client) ReorderEvents(ctx context.Context, ids []int64) error {
	if err := c.put(ctx, "/events/reorder", ids, nil); err != nil {
		return fmt.Errorf("(*Client).ReorderEvents: %w", err)
	}
	return nil
}

func (c *Client) EventRegistrations(ctx context.Context, id int64) ([]model.Registration, error) {
	registrations := make([]model.Registration, 0)
	if err := c.get(ctx, eventPath(id, "/registrations"), &registrations); err != nil {
		return nil, fmt.Errorf("(*Client).EventRegistrations: %w", err)
	}
	return registrations, nil
}

// RequestFeedback asks the backend to email every attendee a feedback link.
func (c *Client) RequestFeedback(ctx context.Context, id int64) (*model.MessageResult, error) {
	result := new(model.MessageResult)
	if err := c.post(ctx, eventPath(id, "/feedback-request"), nil, result); err != nil {
		return nil, fmt.Errorf("(*Client).RequestFeedback: %w", err)
	}
	return result, nil
}

func (c *Client) InviteGuests(ctx context.Context, id int64, emails []string) (*model.MessageResult, error) {
	if len(emails) == 0 {
		return nil, errors.New("(*Client).InviteGuests: at least one email is required")
	}
	result := new(model.MessageResult)
	if err := c.post(ctx, eventPath(id, "/invite"), model.InviteInput{Emails: emails}, result); err != nil {
		return nil, fmt.Errorf("(*Client).InviteGuests: %w", err)
	}
	return result, nil
}
