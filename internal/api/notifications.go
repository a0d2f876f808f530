package api

import (
	"context"
	"fmt"
	"net/http"
)

const notificationsResource = "notifications"

func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.do(ctx, notificationsResource, http.MethodGet, "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int) error {
	return c.do(ctx, notificationsResource, http.MethodPut, fmt.Sprintf("/notifications/%d/read", id), nil, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	return c.do(ctx, notificationsResource, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, nil)
}
