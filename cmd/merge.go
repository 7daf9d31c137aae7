package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bombe.dev/pkg/bombe/internal/domain"
	m "bombe.dev/pkg/bombe/internal/model"
)

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Merge sharded search reports into a single report",
		Long:  "Merge reports from shard_* subdirectories into a single report in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.Merge(cmd.Context(), domain.MergeArgs{Reports: reportsPath})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
