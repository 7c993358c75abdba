package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stylus/internal/config"
	"stylus/internal/crate"
	"stylus/internal/poll"
)

func newSellersCommand(ctx *commandContext) *cobra.Command {
	sellersCmd := &cobra.Command{
		Use:   "sellers",
		Short: "Manage monitored marketplace sellers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			sellers, err := client.FetchSellers(cmd.Context())
			if err != nil {
				return err
			}
			if len(sellers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no sellers monitored")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Username", "Inventory", "Matches", "Last scanned"},
				sellerRows(sellers),
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	sellersCmd.AddCommand(&cobra.Command{
		Use:   "add <username>",
		Short: "Monitor a seller's inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			seller, err := client.AddSeller(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", seller.Username)
			return nil
		},
	})

	sellersCmd.AddCommand(&cobra.Command{
		Use:   "remove <username>",
		Short: "Stop monitoring a seller",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			if err := client.RemoveSeller(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	})

	var wait bool
	scanCmd := &cobra.Command{
		Use:   "scan <username>",
		Short: "Scan a seller's inventory for collection matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			username := args[0]
			if err := client.StartSellerScan(cmd.Context(), username); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scan started for %s\n", username)
			if !wait {
				return nil
			}

			final, err := waitForScan(cmd, client, cfg, username)
			if err != nil {
				return err
			}
			if final == crate.JobError {
				return fmt.Errorf("scan finished with an error")
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("scan completed"))
			return nil
		},
	}
	scanCmd.Flags().BoolVar(&wait, "wait", false, "Poll until the scan finishes")
	sellersCmd.AddCommand(scanCmd)

	sellersCmd.AddCommand(&cobra.Command{
		Use:   "matches <username>",
		Short: "Show collection wants found in a seller's inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			matches, err := client.FetchSellerMatches(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no matches")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Artist", "Title", "Condition", "Price"},
				matchRows(matches),
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	})

	sellersCmd.AddCommand(&cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch every monitored seller's inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			if err := client.RefreshSellerInventories(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "inventory refresh started")
			return nil
		},
	})

	return sellersCmd
}

func waitForScan(cmd *cobra.Command, client *crate.Client, cfg config.Config, username string) (crate.JobStatus, error) {
	watcher := poll.Watcher{
		Fetch: func(c context.Context) (crate.JobStatus, error) {
			status, err := client.FetchSellerScanStatus(c, username)
			if err != nil {
				return "", err
			}
			return status.Status, nil
		},
		Interval: cfg.PollInterval,
		OnUpdate: func(u poll.Update) {
			if u.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "poll failed: %v\n", u.Err)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", u.Status)
		},
	}
	return watcher.Run(cmd.Context())
}

func sellerRows(sellers []crate.Seller) [][]string {
	rows := make([][]string, 0, len(sellers))
	for _, seller := range sellers {
		lastScanned := ""
		if t := seller.ParsedLastScanned(); !t.IsZero() {
			lastScanned = t.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			seller.Username,
			fmt.Sprintf("%d", seller.InventorySize),
			fmt.Sprintf("%d", seller.MatchCount),
			lastScanned,
		})
	}
	return rows
}

func matchRows(matches []crate.SellerMatch) [][]string {
	rows := make([][]string, 0, len(matches))
	for _, match := range matches {
		price := ""
		if match.Price > 0 {
			price = fmt.Sprintf("%.2f %s", match.Price, match.Currency)
		}
		rows = append(rows, []string{match.Artist, match.Title, match.Condition, price})
	}
	return rows
}
