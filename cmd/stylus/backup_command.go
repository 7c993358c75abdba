package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"stylus/internal/crate"
)

func newBackupCommand(ctx *commandContext) *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import server backups",
	}
	backupCmd.AddCommand(newBackupExportCommand(ctx))
	backupCmd.AddCommand(newBackupImportCommand(ctx))
	return backupCmd
}

func newBackupExportCommand(ctx *commandContext) *cobra.Command {
	var (
		includeCredentials bool
		output             string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the server's data to a backup file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.crateClient()
			if err != nil {
				return err
			}

			req := crate.ExportRequest{IncludeCredentials: includeCredentials}
			if includeCredentials {
				password, err := promptBackupPassword(cmd)
				if err != nil {
					return err
				}
				req.Password = password
			}

			payload, err := client.ExportBackup(cmd.Context(), req)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = fmt.Sprintf("stylus-backup-%s.json", time.Now().Format("20060102-150405"))
			}
			if err := os.WriteFile(path, payload, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "backup written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeCredentials, "credentials", false, "Include API credentials, encrypted with a password")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stylus-backup-<timestamp>.json)")
	return cmd
}

func newBackupImportCommand(ctx *commandContext) *cobra.Command {
	var (
		mode     string
		password string
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore server data from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch crate.BackupMode(mode) {
			case crate.BackupMerge, crate.BackupReplace:
			default:
				return fmt.Errorf("mode must be merge or replace, got %q", mode)
			}

			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			client, err := ctx.crateClient()
			if err != nil {
				return err
			}
			if err := client.ImportBackup(cmd.Context(), crate.ImportRequest{
				Mode:     crate.BackupMode(mode),
				Password: password,
				Payload:  payload,
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "backup imported")
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "merge", "How to apply the backup (merge or replace)")
	cmd.Flags().StringVar(&password, "password", "", "Password for backups that include credentials")
	return cmd
}

// promptBackupPassword reads and confirms the export password without echoing.
func promptBackupPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("exporting credentials requires an interactive terminal for the password prompt")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Backup password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	if len(password) < 8 {
		return "", fmt.Errorf("password must be at least 8 characters")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Confirm password: ")
	confirm, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	return string(password), nil
}
