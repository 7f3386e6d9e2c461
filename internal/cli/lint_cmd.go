package cli

import (
	"fmt"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/planfile"
	"github.com/spf13/cobra"
)

func newLintCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report empty names, non-positive ids and malformed dates in a plan file",
		Args:  cobra.NoArgs,
	}
	loadPlan := planFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}
		problems, err := planfile.Lint(plan)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(problems) == 0 {
			fmt.Fprintln(out, formatter.Dim("plan is well formed"))
			return nil
		}
		fmt.Fprintln(out, formatter.Header("PROBLEMS"))
		for _, p := range problems {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return fmt.Errorf("plan has %d problem(s)", len(problems))
	}

	return cmd
}
