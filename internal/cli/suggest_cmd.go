package cli

import (
	"fmt"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/contract"
	"github.com/alexanderramin/workplan/internal/planfile"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Generate placeholder milestones or tasks",
	}
	cmd.AddCommand(
		newSuggestMilestonesCmd(app),
		newSuggestTasksCmd(app),
	)
	return cmd
}

func newSuggestMilestonesCmd(app *App) *cobra.Command {
	var (
		selected []int
		overview string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "milestones",
		Short: "Two placeholder milestones per workstream",
		Args:  cobra.NoArgs,
	}
	loadPlan := planFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}
		items := app.Suggest.Milestones(cmd.Context(), contract.GenerateMilestonesRequest{
			Overview:              overview,
			Workstreams:           plan.Workstreams,
			SelectedWorkstreamIDs: selected,
		})
		if asJSON {
			return planfile.Encode(cmd.OutOrStdout(), items, planfile.FormatJSON)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMilestones(items))
		return nil
	}

	cmd.Flags().IntSliceVar(&selected, "workstreams", nil, "Only these workstream ids")
	cmd.Flags().StringVar(&overview, "overview", "", "Deal overview")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newSuggestTasksCmd(app *App) *cobra.Command {
	var (
		selected []int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Three placeholder tasks per milestone",
		Args:  cobra.NoArgs,
	}
	loadPlan := planFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		plan, err := loadPlan()
		if err != nil {
			return err
		}
		items := app.Suggest.Tasks(cmd.Context(), contract.GenerateTasksRequest{
			Milestones:           plan.Milestones,
			SelectedMilestoneIDs: selected,
		})
		if asJSON {
			return planfile.Encode(cmd.OutOrStdout(), items, planfile.FormatJSON)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(items))
		return nil
	}

	cmd.Flags().IntSliceVar(&selected, "milestones", nil, "Only these milestone ids")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
