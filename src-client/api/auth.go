package api

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"campusevents/src-client/model"
	"campusevents/src-client/session"
)

// Where every role lands after logging in.
const LandingPath = "/dashboard"

type LoginResult struct {
	Session session.Session
	Landing string
}

// Login exchanges credentials for a token and stores it. Nothing is stored
// when the backend refuses.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, errors.New("(*Client).Login: username and password are required")
	}

	resp, err := c.gw.PostForm(ctx, "/auth/login", url.Values{
		"username": {username},
		"password": {password},
	})
	token := new(model.Token)
	if err := decode(resp, err, token); err != nil {
		return nil, fmt.Errorf("(*Client).Login: %w", err)
	}
	if token.AccessToken == "" {
		return nil, errors.New("(*Client).Login: backend returned no token")
	}

	current := session.Session{
		Token: token.AccessToken,
		Role:  token.Role,
		Name:  token.Name,
	}
	if err := c.sessions.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("(*Client).Login: can't store session: %w", err)
	}
	return &LoginResult{Session: current, Landing: LandingPath}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("(*Client).Logout: %w", err)
	}
	return nil
}

// CurrentSession returns session.ErrNoSession when nobody is logged in.
func (c *Client) CurrentSession(ctx context.Context) (session.Session, error) {
	return c.sessions.Load(ctx)
}

// Signup creates an inactive account; the backend mails a verification link.
func (c *Client) Signup(ctx context.Context, input model.SignupInput) (*model.MessageResult, error) {
	result := new(model.MessageResult)
	if err := c.post(ctx, "/auth/register", input, result); err != nil {
		return nil, fmt.Errorf("(*Client).Signup: %w", err)
	}
	return result, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (*model.MessageResult, error) {
	path := "/auth/forgot-password?" + url.Values{"email": {strings.TrimSpace(email)}}.Encode()
	result := new(model.MessageResult)
	if err := c.post(ctx, path, nil, result); err != nil {
		return nil, fmt.Errorf("(*Client).ForgotPassword: %w", err)
	}
	return result, nil
}
