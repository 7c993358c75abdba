package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stylus/internal/crate"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show server and sync job status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}

			health, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "server   %s (version %s)\n",
				color.GreenString(health.Status), health.Version)

			if history, err := client.FetchHistorySyncStatus(cmd.Context()); err == nil {
				printSyncLine(cmd, "history", *history)
			}
			if collection, err := client.FetchCollectionSyncStatus(cmd.Context()); err == nil {
				printSyncLine(cmd, "collection", *collection)
			}

			if settings, err := client.FetchSettings(cmd.Context()); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "discogs  %s\n", configuredLabel(settings.DiscogsConfigured, settings.DiscogsUsername))
				fmt.Fprintf(cmd.OutOrStdout(), "lastfm   %s\n", configuredLabel(settings.LastfmConfigured, settings.LastfmUsername))
			}
			return nil
		},
	}
}

func printSyncLine(cmd *cobra.Command, label string, sync crate.SyncStatus) {
	line := statusColor(sync.Status).Sprint(string(sync.Status))
	if sync.Status.InProgress() {
		line += fmt.Sprintf(" %.0f%%", sync.Progress)
		if sync.TotalScrobbles > 0 {
			line += fmt.Sprintf(" (%d/%d)", sync.ScrobblesFetched, sync.TotalScrobbles)
		}
		if eta := sync.ETA(); eta > 0 {
			line += " eta " + eta.Round(time.Second).String()
		}
	}
	if sync.Status == crate.JobError && sync.Error != "" {
		line += " " + sync.Error
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", label, line)
}

func statusColor(status crate.JobStatus) *color.Color {
	switch {
	case status == crate.JobCompleted:
		return color.New(color.FgGreen)
	case status == crate.JobError:
		return color.New(color.FgRed, color.Bold)
	case status == crate.JobPaused:
		return color.New(color.FgYellow)
	case status.InProgress():
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgWhite)
	}
}

func configuredLabel(configured bool, username string) string {
	if !configured {
		return color.YellowString("not configured")
	}
	if username != "" {
		return color.GreenString("connected") + " as " + username
	}
	return color.GreenString("connected")
}
