package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stylus/internal/crate"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List scrobbled album plays",
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

			page, err := client.FetchHistory(cmd.Context(), query)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Played", "Artist", "Album", "Tracks", "In crate"},
				playRows(page.Items),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			printPageSummary(cmd, page.Pagination)
			return nil
		},
	}

	flags.register(cmd, "date")
	return cmd
}

func playRows(plays []crate.PlayEntry) [][]string {
	rows := make([][]string, 0, len(plays))
	for _, play := range plays {
		played := ""
		if t := play.ParsedPlayedAt(); !t.IsZero() {
			played = t.Format("2006-01-02 15:04")
		}
		inCrate := ""
		if play.InCrate {
			inCrate = "yes"
		}
		rows = append(rows, []string{
			played,
			play.Artist,
			play.Album,
			fmt.Sprintf("%d", play.TrackCount),
			inCrate,
		})
	}
	return rows
}
