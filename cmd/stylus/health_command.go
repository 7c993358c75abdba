package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"stylus/internal/crate"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the crate server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}

			health, err := client.Health(cmd.Context())
			if err != nil {
				if errors.Is(err, crate.ErrServerDown) {
					return fmt.Errorf("crate server is not running at %s", client.BaseURL())
				}
				return err
			}

			uptime := time.Duration(health.Uptime) * time.Second
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s, up %s\n",
				color.GreenString(health.Status), health.Version, uptime)
			return nil
		},
	}
}
