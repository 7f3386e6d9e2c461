package cli

import (
	"fmt"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/scope"
	"github.com/spf13/cobra"
)

func newScopeCmd(app *App) *cobra.Command {
	var (
		sel      selectionFlags
		showPlan bool
	)

	cmd := &cobra.Command{
		Use:   "scope",
		Short: "Show which plan items a selection lets the assistant edit",
		Args:  cobra.NoArgs,
	}
	loadPlan := planFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}
		step, err := sel.activeStep()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showPlan {
			fmt.Fprintln(out, formatter.FormatPlan(plan))
		}
		fmt.Fprintln(out, formatter.FormatScope(plan, scope.Resolve(plan, sel.selection())))
		fmt.Fprintln(out, scope.Summary(plan, sel.selection(), step))
		return nil
	}

	sel.register(cmd.Flags())
	cmd.Flags().BoolVar(&showPlan, "tree", false, "Also print the plan tree")

	return cmd
}
