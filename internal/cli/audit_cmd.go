package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errAuditDisabled = errors.New("audit log is disabled; set audit.db_path")

func newAuditCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List recent reconciliation rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Audit == nil {
				return errAuditDisabled
			}
			recs, err := app.Audit.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAudit(recs, app.wall().Now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum rounds to show")
	cmd.AddCommand(newAuditPruneCmd(app))
	return cmd
}

func newAuditPruneCmd(app *App) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete rounds older than a duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Audit == nil {
				return errAuditDisabled
			}
			n, err := app.Audit.Prune(cmd.Context(), olderThan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d round(s)\n", n)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "Age cutoff, e.g. 720h")
	return cmd
}
