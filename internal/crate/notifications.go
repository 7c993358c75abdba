package crate

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// FetchNotifications retrieves the notification feed, optionally restricted to
// unread entries.
func (c *Client) FetchNotifications(ctx context.Context, unreadOnly bool) ([]Notification, error) {
	var query url.Values
	if unreadOnly {
		query = url.Values{"unread": []string{"1"}}
	}
	var notifications []Notification
	if err := c.get(ctx, apiPrefix+"/notifications", query, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("notification id required")
	}
	return c.put(ctx, apiPrefix+"/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.post(ctx, apiPrefix+"/notifications/read-all", nil, nil)
}

// DismissNotification removes one notification.
func (c *Client) DismissNotification(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("notification id required")
	}
	return c.delete(ctx, apiPrefix+"/notifications/"+url.PathEscape(id))
}

// ClearNotifications removes every notification.
func (c *Client) ClearNotifications(ctx context.Context) error {
	return c.delete(ctx, apiPrefix+"/notifications")
}
