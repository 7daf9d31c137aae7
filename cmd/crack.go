package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bombe.dev/pkg/bombe/internal/domain"
	m "bombe.dev/pkg/bombe/internal/model"
)

var crackFlagBindings = []flagBinding{
	{flag: reflectorFlagName, key: reflectorConfigKey},
	{flag: wheelsFlagName, key: wheelsConfigKey},
	{flag: runParallelFlagName, key: runParallelConfigKey},
	{flag: maxMatchesFlagName, key: maxMatchesConfigKey},
	{flag: diagonalBoardFlagName, key: diagonalBoardConfigKey},
	{flag: verifyPlugboardFlagName, key: verifyPlugboardConfigKey},
}

type crackOptions struct {
	cribOptions

	reflector       string
	wheels          string
	orders          []string
	allOrders       bool
	pool            []string
	start           string
	diagonalBoard   bool
	verifyPlugboard bool
	parallel        int
	maxMatches      int
	shard           string
}

// crackCmd represents the crack command.
var crackCmd = newCrackCmd()

func newCrackCmd() *cobra.Command {
	var opts crackOptions

	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Search for the machine settings behind a crib",
		Long:  crackLongDescription,
		Args:  cobra.ExactArgs(0),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindCommandFlags(cmd, crackFlagBindings)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			orders, err := crackOrders(opts)
			if err != nil {
				return err
			}

			start, err := parseSignal(opts.start)
			if err != nil {
				return err
			}

			shardIndex, totalShards, err := parseShardFlag(opts.shard)
			if err != nil {
				return err
			}

			return workflow.Crack(cmd.Context(), domain.CrackArgs{
				Catalog:         m.Path(viper.GetString(catalogConfigKey)),
				Crib:            opts.crib,
				Ciphertext:      opts.ciphertext,
				Offset:          opts.offset,
				Reflector:       viper.GetString(reflectorConfigKey),
				Orders:          orders,
				Start:           start,
				DiagonalBoard:   viper.GetBool(diagonalBoardConfigKey),
				VerifyPlugboard: viper.GetBool(verifyPlugboardConfigKey),
				Threads:         viper.GetInt(runParallelConfigKey),
				MaxMatches:      viper.GetInt(maxMatchesConfigKey),
				ShardIndex:      shardIndex,
				TotalShards:     totalShards,
				Reports:         m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureCrackFlags(cmd, &opts)

	return cmd
}

func init() {
	rootCmd.AddCommand(crackCmd)
}

func configureCrackFlags(cmd *cobra.Command, opts *crackOptions) {
	configureCribFlags(cmd, &opts.cribOptions)

	cmd.Flags().StringVar(&opts.reflector, reflectorFlagName, viper.GetString(reflectorConfigKey), "reflector name")
	cmd.Flags().StringVar(&opts.wheels, wheelsFlagName, viper.GetString(wheelsConfigKey), "wheel order to test when no --orders are given")
	cmd.Flags().StringArrayVar(&opts.orders, "orders", nil, "wheel order to test, such as I,II,III (can be repeated)")
	cmd.Flags().BoolVar(&opts.allOrders, "all-orders", false, "test every order of three distinct wheels from --pool")
	cmd.Flags().StringSliceVar(&opts.pool, "pool", domain.DefaultWheelPool, "wheels that --all-orders draws from")
	cmd.Flags().StringVar(&opts.start, "start", "", "bank and wire of the initial hypothesis, such as ae (default: most connected menu letter)")
	cmd.Flags().BoolVar(&opts.diagonalBoard, diagonalBoardFlagName, viper.GetBool(diagonalBoardConfigKey), "use the diagonal board")
	cmd.Flags().BoolVar(&opts.verifyPlugboard, verifyPlugboardFlagName, viper.GetBool(verifyPlugboardConfigKey), "reject stops with contradictory plugboard pairs")
	cmd.Flags().IntVarP(&opts.parallel, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel search workers")
	cmd.Flags().IntVar(&opts.maxMatches, maxMatchesFlagName, viper.GetInt(maxMatchesConfigKey), "stop after this many candidates (0 searches everything)")
	cmd.Flags().StringVarP(&opts.shard, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
}

// crackOrders resolves which wheel orders to test. Explicit --orders win
// over --all-orders, which wins over the configured wheels.
func crackOrders(opts crackOptions) ([]m.WheelOrder, error) {
	if len(opts.orders) > 0 {
		return parseWheelOrders(opts.orders)
	}

	if opts.allOrders {
		orders := domain.WheelOrders(opts.pool)
		if len(orders) == 0 {
			return nil, fmt.Errorf("--pool needs at least three wheels, got %d", len(opts.pool))
		}

		return orders, nil
	}

	return parseWheelOrders([]string{viper.GetString(wheelsConfigKey)})
}

// parseShardFlag reads INDEX/TOTAL. An empty value is the single shard 0/1.
func parseShardFlag(shard string) (int, int, error) {
	if shard == "" {
		return 0, 1, nil
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 0, fmt.Errorf("%w: %q must be INDEX/TOTAL with 0 <= INDEX < TOTAL", domain.ErrInvalidShard, shard)
	}

	return index, total, nil
}
