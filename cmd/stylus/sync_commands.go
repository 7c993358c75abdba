package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stylus/internal/crate"
	"stylus/internal/poll"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Start sync jobs on the crate server",
	}

	syncCmd.AddCommand(newSyncJobCommand(ctx, "collection", "Sync the Discogs collection",
		func(client *crate.Client) func(context.Context) error { return client.StartCollectionSync },
		func(client *crate.Client) func(context.Context) (crate.JobStatus, error) {
			return func(c context.Context) (crate.JobStatus, error) {
				status, err := client.FetchCollectionSyncStatus(c)
				if err != nil {
					return "", err
				}
				return status.Status, nil
			}
		}))

	syncCmd.AddCommand(newSyncJobCommand(ctx, "history", "Sync the Last.fm listening history",
		func(client *crate.Client) func(context.Context) error { return client.StartHistorySync },
		func(client *crate.Client) func(context.Context) (crate.JobStatus, error) {
			return func(c context.Context) (crate.JobStatus, error) {
				status, err := client.FetchHistorySyncStatus(c)
				if err != nil {
					return "", err
				}
				return status.Status, nil
			}
		}))

	return syncCmd
}

func newSyncJobCommand(
	ctx *commandContext,
	name, short string,
	start func(*crate.Client) func(context.Context) error,
	fetch func(*crate.Client) func(context.Context) (crate.JobStatus, error),
) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			if err := start(client)(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s sync started\n", name)

			if !wait {
				return nil
			}

			watcher := poll.Watcher{
				Fetch:    fetch(client),
				Interval: cfg.PollInterval,
				OnUpdate: func(u poll.Update) {
					if u.Err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "poll failed: %v\n", u.Err)
						return
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", u.Status)
				},
			}

			final, err := watcher.Run(cmd.Context())
			if err != nil {
				return err
			}
			switch final {
			case crate.JobCompleted:
				fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("sync completed"))
				return nil
			case crate.JobError:
				return fmt.Errorf("sync finished with an error")
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "sync finished: %s\n", final)
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the sync job finishes")
	return cmd
}
