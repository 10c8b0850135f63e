package rest

import (
	"context"
	"encoding/json"

	"github.com/go-faster/errors"

	"github.com/velora-jewels/storefront-go/internal/domain/notification"
	"github.com/velora-jewels/storefront-go/internal/gateway"
)

var _ notification.Service = (*NotificationsClient)(nil)

// NotificationsClient talks to the notification service.
type NotificationsClient struct {
	api *gateway.Client
}

// NewNotificationsClient returns a NotificationsClient using the given gateway.
func NewNotificationsClient(api *gateway.Client) *NotificationsClient {
	return &NotificationsClient{api: api}
}

// Create publishes a notification to a user.
func (c *NotificationsClient) Create(ctx context.Context, req notification.CreateRequest) (*notification.Notification, error) {
	var out notification.Notification
	if err := c.api.Post(ctx, "/notifications", req, &out); err != nil {
		return nil, errors.Wrap(err, "create notification")
	}
	return &out, nil
}

// ListByUser fetches all of a user's notifications.
func (c *NotificationsClient) ListByUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	var raw json.RawMessage
	if err := c.api.Get(ctx, "/notifications/user/"+userID, nil, &raw); err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}
	items, _, err := normalizeList[notification.Notification](raw, "notifications")
	if err != nil {
		return nil, errors.Wrap(err, "normalize notifications")
	}
	return items, nil
}

// MarkAsRead flags one notification as read.
func (c *NotificationsClient) MarkAsRead(ctx context.Context, id string) (*notification.Notification, error) {
	var out notification.Notification
	if err := c.api.Put(ctx, "/notifications/read/"+id, nil, &out); err != nil {
		return nil, errors.Wrapf(err, "mark notification %s read", id)
	}
	return &out, nil
}

// Delete removes one notification.
func (c *NotificationsClient) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/notifications/"+id, nil); err != nil {
		return errors.Wrapf(err, "delete notification %s", id)
	}
	return nil
}
