package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stylus/internal/crate"
)

type listFlags struct {
	page    int
	perPage int
	sortBy  string
	order   string
	search  string
}

func (f *listFlags) register(cmd *cobra.Command, defaultSort string) {
	cmd.Flags().IntVar(&f.page, "page", 1, "Page to fetch")
	cmd.Flags().IntVar(&f.perPage, "per-page", 0, "Items per page (0 uses the configured default)")
	cmd.Flags().StringVar(&f.sortBy, "sort", defaultSort, "Sort field")
	cmd.Flags().StringVar(&f.order, "order", "desc", "Sort order (asc or desc)")
	cmd.Flags().StringVar(&f.search, "search", "", "Search term")
}

func (f *listFlags) query(perPageDefault int) (crate.ListQuery, error) {
	order := crate.SortOrder(f.order)
	switch order {
	case crate.SortAsc, crate.SortDesc:
	default:
		return crate.ListQuery{}, fmt.Errorf("order must be asc or desc, got %q", f.order)
	}
	perPage := f.perPage
	if perPage <= 0 {
		perPage = perPageDefault
	}
	return crate.ListQuery{
		Page:      f.page,
		PerPage:   perPage,
		SortBy:    f.sortBy,
		SortOrder: order,
		Search:    f.search,
	}, nil
}

func newCollectionCommand(ctx *commandContext) *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "collection",
		Short: "List albums in the Discogs collection",
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

			page, err := client.FetchCollection(cmd.Context(), query)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Artist", "Title", "Year", "Format", "Plays", "Last played"},
				albumRows(page.Items),
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignRight, alignLeft},
			))
			printPageSummary(cmd, page.Pagination)
			return nil
		},
	}

	flags.register(cmd, "artist")
	return cmd
}

func albumRows(albums []crate.Album) [][]string {
	rows := make([][]string, 0, len(albums))
	for _, album := range albums {
		year := ""
		if album.Year > 0 {
			year = fmt.Sprintf("%d", album.Year)
		}
		last := ""
		if t := album.ParsedLastPlayed(); !t.IsZero() {
			last = t.Format("2006-01-02")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", album.ID),
			album.Artist,
			album.Title,
			year,
			album.Format,
			fmt.Sprintf("%d", album.PlayCount),
			last,
		})
	}
	return rows
}

func printPageSummary(cmd *cobra.Command, p crate.Pagination) {
	if p.Pages > 1 {
		fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d total)\n", p.Page, p.Pages, p.Total)
	} else if p.Total > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%d total\n", p.Total)
	}
}
