package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bombe.dev/pkg/bombe/internal/domain"
	m "bombe.dev/pkg/bombe/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved search reports",
		Long:  "View search reports from a reports directory and its shard_* subdirectories.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
