// Package reorder drives drag-and-drop reordering of the event list.
//
// A drop is applied to the store right away. When no filter is active the
// new order is then sent to the backend in the background; a failed send is
// only logged and the local order stays as it is (the client wins).
package reorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"campusevents/src-client/store"
)

var (
	ErrNotDragging = errors.New("no drag in progress")
	ErrDragging    = errors.New("a drag is already in progress")
)

type State int

const (
	StateIdle State = iota
	StateDragging
	StateDropped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDropped:
		return "dropped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Persister interface {
	ReorderEvents(ctx context.Context, ids []int64) error
}

type Controller struct {
	mu       sync.Mutex
	state    State
	activeID int64

	events    *store.Store
	persister Persister
	inflight  sync.WaitGroup
	lastErr   error

	// called after every background save, nil error on success
	OnPersisted func(ids []int64, took time.Duration, err error)
}

func New(events *store.Store, persister Persister) *Controller {
	return &Controller{
		events:    events,
		persister: persister,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Drag picks up an event that is currently visible.
func (c *Controller) Drag(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateIdle {
		return fmt.Errorf("(*Controller).Drag: %w", ErrDragging)
	}
	if _, err := c.events.Get(id); err != nil {
		return fmt.Errorf("(*Controller).Drag: %w", err)
	}
	c.state = StateDragging
	c.activeID = id
	return nil
}

func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateIdle
	c.activeID = 0
}

// Drop places the dragged event where overID is. It reports whether a
// background save was started. Dropping an event on itself changes nothing.
func (c *Controller) Drop(ctx context.Context, overID int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateDragging {
		return false, fmt.Errorf("(*Controller).Drop: %w", ErrNotDragging)
	}
	c.state = StateDropped
	activeID := c.activeID
	defer func() {
		c.state = StateIdle
		c.activeID = 0
	}()

	if activeID == overID {
		return false, nil
	}
	ids, unfiltered, err := c.events.ApplyMove(activeID, overID)
	if err != nil {
		return false, fmt.Errorf("(*Controller).Drop: %w", err)
	}
	if !unfiltered {
		slog.Debug("reorder not persisted, a filter is active", "active_id", activeID, "over_id", overID)
		return false, nil
	}

	c.inflight.Add(1)
	go c.persist(context.WithoutCancel(ctx), ids)
	return true, nil
}

// Wait blocks until every background save has finished.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// LastErr is the outcome of the most recent background save.
func (c *Controller) LastErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) persist(ctx context.Context, ids []int64) {
	defer c.inflight.Done()

	startTimer := time.Now()
	err := c.persister.ReorderEvents(ctx, ids)
	took := time.Since(startTimer)
	c.mu.Lock()
	c.lastErr = err
	c.mu.Unlock()
	if err != nil {
		slog.Error("can't persist event order", "error", err, "ids", ids)
	} else {
		slog.Debug("event order persisted", "count", len(ids), "took", took)
	}
	if c.OnPersisted != nil {
		c.OnPersisted(ids, took, err)
	}
}
