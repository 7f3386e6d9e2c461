package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the plan to an Excel workbook",
		Args:  cobra.NoArgs,
	}
	loadPlan := planFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}
		res, err := app.Export.Export(cmd.Context(), plan)
		if err != nil {
			return err
		}
		path := outPath
		if path == "" {
			path = res.Filename
		}
		if err := os.WriteFile(path, res.Data, 0o644); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default workplan_<timestamp>.xlsx)")
	return cmd
}
