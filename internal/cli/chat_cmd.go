package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/contract"
	"github.com/alexanderramin/workplan/internal/planfile"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var (
		message string
		sel     selectionFlags
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run one assistant edit round against a plan file",
		Long: `Sends the plan, the selection and a message to the configured
generator, then prints the updates that survive scope reconciliation.
Updates outside the selection are dropped; on the milestones step task
updates are always dropped.`,
		Args: cobra.NoArgs,
	}
	loadPlan := planFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if message == "" {
			return errors.New("--message is required")
		}
		plan, err := loadPlan()
		if err != nil {
			return err
		}
		step, err := sel.activeStep()
		if err != nil {
			return err
		}

		req := contract.NewChatRequest(message, plan)
		req.SelectedWorkstreamIDs = sel.workstreams
		req.SelectedMilestoneIDs = sel.milestones
		req.SelectedTaskIDs = sel.tasks
		req.ActiveStep = step

		stop := func() {}
		if app.interactive() {
			stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Asking the assistant...")
		}
		resp := app.Chat.Chat(cmd.Context(), req)
		stop()

		if asJSON {
			return planfile.Encode(cmd.OutOrStdout(), resp, planfile.FormatJSON)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChatResponse(resp))
		return nil
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "What to ask the assistant")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw chat response as JSON")
	sel.register(cmd.Flags())

	return cmd
}
