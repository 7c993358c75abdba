package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"stylus/internal/crate"
)

// handleNotificationsKey processes keys specific to the notifications view.
func (m Model) handleNotificationsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		n := m.selectedNotification()
		if n == nil || n.Read {
			return m, nil
		}
		id := n.ID
		client, localCache := m.client, m.cache
		return m, m.runAction("", false, func(ctx context.Context) error {
			if localCache != nil {
				// Locally-created notifications never exist on the server.
				if localCache.IsLocalNotification(id) {
					return localCache.MarkRead(id)
				}
				_ = localCache.MarkRead(id)
			}
			return client.MarkNotificationRead(ctx, id)
		})

	case "A":
		return m, m.runAction("All notifications read", false, m.client.MarkAllNotificationsRead)

	case "x":
		n := m.selectedNotification()
		if n == nil {
			return m, nil
		}
		id := n.ID
		client, localCache := m.client, m.cache
		return m, m.runAction("Dismissed", false, func(ctx context.Context) error {
			if localCache != nil && localCache.IsLocalNotification(id) {
				return localCache.DismissLocalNotification(id)
			}
			return client.DismissNotification(ctx, id)
		})

	case "C":
		return m, m.runAction("Notifications cleared", false, m.client.ClearNotifications)
	}
	return m, nil
}

// renderNotifications renders the notification feed, unread entries first.
func (m Model) renderNotifications() string {
	notifications := m.snapshot.Notifications
	if len(notifications) == 0 {
		return m.emptyMessage("No notifications")
	}

	titleW := m.width * 30 / 100
	if titleW < 16 {
		titleW = 16
	}

	header := pad("", 2) + pad("When", 18) + pad("Title", titleW) + "Message"

	rows := make([]string, 0, len(notifications))
	for _, n := range notifications {
		marker := " "
		if !n.Read {
			marker = "●"
		}
		when := ""
		if t := n.ParsedTimestamp(); !t.IsZero() {
			when = t.Format("2006-01-02 15:04")
		}
		rows = append(rows, pad(marker, 2)+pad(when, 18)+pad(n.Title, titleW)+n.Message)
	}

	return m.renderList(header, rows, m.notifSelected, m.listFooter(nil, false, len(notifications)))
}

func (m *Model) selectedNotification() *crate.Notification {
	if m.notifSelected < 0 || m.notifSelected >= len(m.snapshot.Notifications) {
		return nil
	}
	return &m.snapshot.Notifications[m.notifSelected]
}
