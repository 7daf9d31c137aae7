package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bombe.dev/pkg/bombe/internal/domain"
	m "bombe.dev/pkg/bombe/internal/model"
)

// wheelsCmd represents the wheels command.
var wheelsCmd = newWheelsCmd()

func newWheelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wheels",
		Short: "List the wheels and reflectors in the wiring catalog",
		Long:  "List the wheels and reflectors of the wiring catalog with their wirings and turnover pegs.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Wheels(cmd.Context(), domain.WheelsArgs{
				Catalog: m.Path(viper.GetString(catalogConfigKey)),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(wheelsCmd)
}
