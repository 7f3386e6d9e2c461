package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/timeline"
	"github.com/spf13/cobra"
)

func newHintsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hints <message>",
		Short: "Show the timeline context extracted from a message",
		Args:  cobra.MinimumNArgs(1),
	}
	loadPlan := planFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		window := timeline.Window{}
		if cmd.Flags().Changed("plan") {
			plan, err := loadPlan()
			if err != nil {
				return err
			}
			window = timeline.SummarizeWindow(plan.Milestones)
		}

		text := strings.Join(args, " ")
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHints(
			timeline.ExtractHints(text),
			window.String(),
			timeline.Today(app.now().Now()),
		))
		return nil
	}

	return cmd
}
