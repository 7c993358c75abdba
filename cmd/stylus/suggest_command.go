package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stylus/internal/crate"
)

func newSuggestCommand(ctx *commandContext) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Show listening suggestions from the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}

			fetch := client.FetchSuggestions
			if refresh {
				fetch = client.RefreshSuggestions
			}
			suggestions, err := fetch(cmd.Context())
			if err != nil {
				return err
			}
			if len(suggestions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no suggestions yet, sync your collection and history first")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Artist", "Title", "Score", "Why"},
				suggestionRows(suggestions),
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Regenerate suggestions instead of returning the cached set")
	return cmd
}

func suggestionRows(suggestions []crate.Suggestion) [][]string {
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{
			s.Artist,
			s.Title,
			fmt.Sprintf("%.1f", s.Score),
			s.Reason,
		})
	}
	return rows
}
