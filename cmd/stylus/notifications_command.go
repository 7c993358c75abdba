package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stylus/internal/crate"
)

func newNotificationsCommand(ctx *commandContext) *cobra.Command {
	var unreadOnly bool

	notifyCmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "Show server notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			notifications, err := client.FetchNotifications(cmd.Context(), unreadOnly)
			if err != nil {
				return err
			}
			if len(notifications) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no notifications")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"", "When", "Type", "Title", "Message"},
				notificationRows(notifications),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}
	notifyCmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only show unread notifications")

	notifyCmd.AddCommand(&cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			return client.MarkNotificationRead(cmd.Context(), args[0])
		},
	})

	notifyCmd.AddCommand(&cobra.Command{
		Use:   "read-all",
		Short: "Mark every notification as read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			return client.MarkAllNotificationsRead(cmd.Context())
		},
	})

	notifyCmd.AddCommand(&cobra.Command{
		Use:   "dismiss <id>",
		Short: "Dismiss a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			return client.DismissNotification(cmd.Context(), args[0])
		},
	})

	notifyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear all notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			return client.ClearNotifications(cmd.Context())
		},
	})

	return notifyCmd
}

func notificationRows(notifications []crate.Notification) [][]string {
	rows := make([][]string, 0, len(notifications))
	for _, n := range notifications {
		unread := ""
		if !n.Read {
			unread = "*"
		}
		when := ""
		if t := n.ParsedTimestamp(); !t.IsZero() {
			when = t.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{unread, when, string(n.Type), n.Title, n.Message})
	}
	return rows
}
