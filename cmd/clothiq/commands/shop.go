package commands

import (
	"github.com/spf13/cobra"

	"clothiq/internal/ui"
)

func shopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive terminal shop",
		Args:  cobra.NoArgs,
		RunE:  runShop,
	}
}

func runShop(cmd *cobra.Command, _ []string) error {
	return ui.Run(cmd.Context(), wire.App, logger.Named("ui"))
}
