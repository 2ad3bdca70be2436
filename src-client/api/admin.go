package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"campusevents/src-client/model"
)

func (c *Client) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	stats := new(model.AdminStats)
	if err := c.get(ctx, "/admin/stats", stats); err != nil {
		return nil, fmt.Errorf("(*Client).AdminStats: %w", err)
	}
	return stats, nil
}

func (c *Client) AdminNotifications(ctx context.Context) ([]model.Notification, error) {
	notifications := make([]model.Notification, 0)
	if err := c.get(ctx, "/admin/notifications", &notifications); err != nil {
		return nil, fmt.Errorf("(*Client).AdminNotifications: %w", err)
	}
	return notifications, nil
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := c.get(ctx, "/admin/users", &users); err != nil {
		return nil, fmt.Errorf("(*Client).Users: %w", err)
	}
	return users, nil
}

func (c *Client) PendingUsers(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := c.get(ctx, "/admin/users/pending", &users); err != nil {
		return nil, fmt.Errorf("(*Client).PendingUsers: %w", err)
	}
	return users, nil
}

// AuthorizeUser activates or deactivates an account, optionally changing
// its role. An empty role keeps the current one.
func (c *Client) AuthorizeUser(ctx context.Context, userID int64, isActive bool, role model.Role) (*model.AuthorizeResult, error) {
	query := url.Values{"is_active": {strconv.FormatBool(isActive)}}
	if role != "" {
		query.Set("role", string(role))
	}
	path := fmt.Sprintf("/admin/users/%d/authorize?%s", userID, query.Encode())
	result := new(model.AuthorizeResult)
	if err := c.post(ctx, path, nil, result); err != nil {
		return nil, fmt.Errorf("(*Client).AuthorizeUser: %w", err)
	}
	return result, nil
}

// AdminResumes lists every active resume with its student.
func (c *Client) AdminResumes(ctx context.Context) ([]model.ResumeDetail, error) {
	resumes := make([]model.ResumeDetail, 0)
	if err := c.get(ctx, "/admin/resumes", &resumes); err != nil {
		return nil, fmt.Errorf("(*Client).AdminResumes: %w", err)
	}
	return resumes, nil
}

func (c *Client) DeleteResume(ctx context.Context, resumeID int64) error {
	if err := c.delete(ctx, fmt.Sprintf("/admin/resumes/%d", resumeID)); err != nil {
		return fmt.Errorf("(*Client).DeleteResume: %w", err)
	}
	return nil
}
