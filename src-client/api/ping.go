package api

import (
	"context"
	"fmt"
	"time"
)

// Ping hits the backend root and reports the round trip time.
func (c *Client) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if err := c.get(ctx, "/", nil); err != nil {
		return 0, fmt.Errorf("(*Client).Ping: %w", err)
	}
	return time.Since(start), nil
}
