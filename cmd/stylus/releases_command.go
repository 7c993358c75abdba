package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stylus/internal/crate"
)

func newReleasesCommand(ctx *commandContext) *cobra.Command {
	var flags listFlags

	releasesCmd := &cobra.Command{
		Use:   "releases",
		Short: "List tracked vinyl releases from collection artists",
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
			query, err := flags.query(cfg.PerPage)
			if err != nil {
				return err
			}

			page, err := client.FetchReleases(cmd.Context(), query)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Artist", "Title", "Released", "Format", "Label", "New"},
				releaseRows(page.Items),
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			printPageSummary(cmd, page.Pagination)
			return nil
		},
	}
	flags.register(releasesCmd, "releaseDate")

	releasesCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Start a release check on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			if err := client.StartReleaseCheck(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "release check started")
			return nil
		},
	})

	releasesCmd.AddCommand(&cobra.Command{
		Use:   "seen <id>",
		Short: "Mark a release as seen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("release id must be a positive number, got %q", args[0])
			}
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			if err := client.MarkReleaseSeen(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "marked release %d as seen\n", id)
			return nil
		},
	})

	return releasesCmd
}

func releaseRows(releases []crate.Release) [][]string {
	rows := make([][]string, 0, len(releases))
	for _, release := range releases {
		released := ""
		if t := release.ParsedReleaseDate(); !t.IsZero() {
			released = t.Format("2006-01-02")
		}
		newMark := ""
		if !release.Seen {
			newMark = "*"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", release.ID),
			release.Artist,
			release.Title,
			released,
			release.Format,
			release.Label,
			newMark,
		})
	}
	return rows
}
