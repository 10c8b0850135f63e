package notification

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"
)

// Container is the client-side notification state holder. It loads the
// signed-in user's notifications and mirrors each successful remote mutation
// into local state afterwards, never before.
//
// All methods are safe for concurrent use.
type Container struct {
	svc Service

	mu            sync.Mutex
	userID        string
	notifications []Notification
}

// NewContainer creates an empty notification container backed by the given
// service.
func NewContainer(svc Service) *Container {
	return &Container{svc: svc}
}

// HandleSignIn records the signed-in user and loads their notifications.
// Intended to be registered as a session sign-in hook.
func (c *Container) HandleSignIn(ctx context.Context, userID string) error {
	c.mu.Lock()
	c.userID = userID
	c.notifications = nil
	c.mu.Unlock()

	loaded, err := c.svc.ListByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "load notifications")
	}

	c.mu.Lock()
	if c.userID == userID {
		c.notifications = loaded
	}
	c.mu.Unlock()
	return nil
}

// HandleSignOut discards all local notification state. Registered as a
// session sign-out hook.
func (c *Container) HandleSignOut() {
	c.mu.Lock()
	c.userID = ""
	c.notifications = nil
	c.mu.Unlock()
}

// Notifications returns a copy of the current notification list.
func (c *Container) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.notifications))
	copy(out, c.notifications)
	return out
}

// UnreadCount returns the number of unread notifications, derived from the
// in-memory list.
func (c *Container) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, n := range c.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkAsRead marks one notification read on the server, then flips the local
// flag once the call succeeds.
func (c *Container) MarkAsRead(ctx context.Context, id string) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	if _, err := c.svc.MarkAsRead(ctx, id); err != nil {
		return errors.Wrap(err, "mark as read")
	}

	c.mu.Lock()
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications[i].IsRead = true
			break
		}
	}
	c.mu.Unlock()
	return nil
}

// Delete removes one notification on the server, then drops it locally once
// the call succeeds.
func (c *Container) Delete(ctx context.Context, id string) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	if err := c.svc.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete notification")
	}

	c.mu.Lock()
	c.removeLocked(id)
	c.mu.Unlock()
	return nil
}

// ClearAll deletes every notification with one independent remote call per
// item, fanned out concurrently. There is no atomicity: items whose delete
// succeeded are removed locally even when others fail, and nothing is retried
// or rolled back. The first failure is returned.
func (c *Container) ClearAll(ctx context.Context) error {
	if err := c.requireUser(); err != nil {
		return err
	}

	c.mu.Lock()
	ids := make([]string, len(c.notifications))
	for i, n := range c.notifications {
		ids[i] = n.ID
	}
	c.mu.Unlock()

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			if err := c.svc.Delete(ctx, id); err != nil {
				return errors.Wrapf(err, "delete notification %s", id)
			}
			c.mu.Lock()
			c.removeLocked(id)
			c.mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

// removeLocked drops the notification with the given ID. Caller holds c.mu.
func (c *Container) removeLocked(id string) {
	for i := range c.notifications {
		if c.notifications[i].ID == id {
			c.notifications = append(c.notifications[:i], c.notifications[i+1:]...)
			return
		}
	}
}

func (c *Container) requireUser() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userID == "" {
		return ErrUnauthenticated
	}
	return nil
}
