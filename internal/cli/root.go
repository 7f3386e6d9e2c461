package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "workplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "workplan",
		Short:         "Scope-safe workplan editing with an AI assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var configPath string
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default ./.workplan.yaml)")
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.Configure == nil {
			return nil
		}
		return app.Configure(configPath)
	}

	root.AddCommand(
		newServeCmd(app),
		newChatCmd(app),
		newScopeCmd(app),
		newHintsCmd(app),
		newSuggestCmd(app),
		newExportCmd(app),
		newAuditCmd(app),
		newLintCmd(app),
	)

	return root
}
