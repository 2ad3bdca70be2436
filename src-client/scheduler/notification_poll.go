package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"campusevents/src-client/model"
	"campusevents/src-client/notify"

	lru "github.com/hashicorp/golang-lru/v2"
)

// how many notification ids are remembered between polls
const SeenCapacity = 1024

type NotificationSource interface {
	AdminNotifications(ctx context.Context) ([]model.Notification, error)
}

// NotificationPoller fetches admin notifications on an interval and relays
// the ones it has not seen yet. The first poll only fills the seen set so
// old notifications are not replayed on start.
type NotificationPoller struct {
	source   NotificationSource
	relay    notify.Relay
	interval time.Duration

	mu     sync.Mutex
	seen   *lru.Cache[int64, struct{}]
	seeded bool
}

func NewNotificationPoller(source NotificationSource, relay notify.Relay, interval time.Duration) (*NotificationPoller, error) {
	seen, err := lru.New[int64, struct{}](SeenCapacity)
	if err != nil {
		return nil, fmt.Errorf("NewNotificationPoller: %w", err)
	}
	return &NotificationPoller{
		source:   source,
		relay:    relay,
		interval: interval,
		seen:     seen,
	}, nil
}

// Run polls until stop is closed. Each tick fetches in its own goroutine so
// a slow backend never delays the next tick.
func (p *NotificationPoller) Run(stop <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var wg sync.WaitGroup
	defer wg.Wait()

	wg.Add(1)
	go func() {
		defer wg.Done()
		p.pollAndLog(ctx)
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			slog.Debug("notification poller stopped")
			return
		case <-ticker.C:
			wg.Add(1)
			go func() {
				defer wg.Done()
				p.pollAndLog(ctx)
			}()
		}
	}
}

func (p *NotificationPoller) pollAndLog(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()
	relayed, err := p.Poll(ctx)
	if err != nil {
		slog.Error("can't poll notifications", "error", err)
		return
	}
	if relayed > 0 {
		slog.Info("notifications relayed", "count", relayed)
	}
}

// Poll runs one fetch and relays unseen notifications, returning how many
// were relayed. A failed relay leaves them unseen for the next poll.
func (p *NotificationPoller) Poll(ctx context.Context) (int, error) {
	notifications, err := p.source.AdminNotifications(ctx)
	if err != nil {
		return 0, fmt.Errorf("(*NotificationPoller).Poll: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	fresh := make([]model.Notification, 0, len(notifications))
	for _, n := range notifications {
		if !p.seen.Contains(n.ID) {
			fresh = append(fresh, n)
		}
	}
	if !p.seeded {
		p.markSeen(fresh)
		p.seeded = true
		return 0, nil
	}
	if len(fresh) == 0 {
		return 0, nil
	}
	if err := p.relay.Relay(ctx, fresh); err != nil {
		return 0, fmt.Errorf("(*NotificationPoller).Poll: %w", err)
	}
	p.markSeen(fresh)
	return len(fresh), nil
}

func (p *NotificationPoller) markSeen(notifications []model.Notification) {
	for _, n := range notifications {
		p.seen.Add(n.ID, struct{}{})
	}
}
