// Package api wraps each backend endpoint in a typed call. Every call goes
// through the gateway and returns either the decoded body or an error;
// non-2xx responses come back as *gateway.APIError.
package api

import (
	"context"
	"fmt"
	"net/http"

	"campusevents/src-client/gateway"
	"campusevents/src-client/session"
)

type Client struct {
	gw       *gateway.Gateway
	sessions session.Store
}

func New(gw *gateway.Gateway, sessions session.Store) *Client {
	return &Client{
		gw:       gw,
		sessions: sessions,
	}
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	resp, err := c.gw.Get(ctx, path)
	return decode(resp, err, v)
}

func (c *Client) post(ctx context.Context, path string, body, v any) error {
	resp, err := c.gw.Post(ctx, path, body)
	return decode(resp, err, v)
}

func (c *Client) put(ctx context.Context, path string, body, v any) error {
	resp, err := c.gw.Put(ctx, path, body)
	return decode(resp, err, v)
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.gw.Delete(ctx, path)
	return decode(resp, err, nil)
}

func decode(resp *http.Response, err error, v any) error {
	if err != nil {
		return err
	}
	return gateway.DecodeJSON(resp, v)
}

func eventPath(id int64, suffix string) string {
	return fmt.Sprintf("/events/%d%s", id, suffix)
}
