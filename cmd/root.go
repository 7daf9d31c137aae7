// Package cmd provides the root command and CLI setup for bombe.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bombe.dev/pkg/bombe/internal/adapter"
	"bombe.dev/pkg/bombe/internal/controller"
	"bombe.dev/pkg/bombe/internal/domain"
	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
)

var reportStore adapter.ReportStore
var catalogSource adapter.CatalogSource
var textSource adapter.TextSource
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// catalogFlag points at an optional wiring catalog file.
var catalogFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewLocalReportStore()
	catalogSource = adapter.NewLocalCatalogSource()
	textSource = adapter.NewLocalTextSource(os.Stdin)
	workflow = domain.NewWorkflow(reportStore, catalogSource, ui)
}

const rootLongDescription = `Bombe is an Enigma machine simulator and a Turing-Welchman bombe.

It enciphers and deciphers text on a configurable three-wheel machine, and
recovers wheel positions and plugboard pairs from a crib and its ciphertext
by searching every wheel position with the bombe.`

const crackLongDescription = `Search for wheel positions consistent with a crib.

The crib is placed against the ciphertext at --offset and turned into a menu.
Every one of the 17576 wheel positions is tested for each wheel order, split
across --parallel workers. Use --shard INDEX/TOTAL to split the positions
across machines and "bombe merge" to combine the shard reports.

Reported positions are wheel core positions at the first ciphertext letter:
the right wheel has already stepped once and ring settings are not applied.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bombe",
		Short: "Enigma machine and bombe",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for search reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&catalogFlag, catalogFlagName, viper.GetString(catalogConfigKey), "wiring catalog YAML file (default: built-in wheels and reflectors)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(catalogFlagName), catalogConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// flagBinding pairs a command-local flag with its config key.
type flagBinding struct {
	flag string
	key  string
}

// bindCommandFlags binds a command's local flags to their keys. It runs
// from PreRun because several commands share the machine keys.
func bindCommandFlags(cmd *cobra.Command, bindings []flagBinding) {
	for _, b := range bindings {
		bindFlagToConfig(cmd.Flags().Lookup(b.flag), b.key)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '-'
	})
}

// parseRings reads three 1-based ring settings such as "1,1,1" or "a b c".
func parseRings(s string) ([3]int, error) {
	var rings [3]int

	fields := splitList(s)
	if len(fields) != len(rings) {
		return rings, fmt.Errorf("%w: ring settings %q need three values", rotor.ErrInvalidSpecification, s)
	}

	for i, field := range fields {
		if n, err := strconv.Atoi(field); err == nil {
			rings[i] = n
			continue
		}

		runes := []rune(strings.ToLower(field))
		if len(runes) != 1 {
			return rings, fmt.Errorf("%w: ring setting %q", rotor.ErrInvalidSpecification, field)
		}

		n, ok := m.Pos(runes[0])
		if !ok {
			return rings, fmt.Errorf("%w: ring setting %q", rotor.ErrInvalidSpecification, field)
		}

		rings[i] = n + 1
	}

	return rings, nil
}

// parseSignal reads a bank and wire such as "ae".
func parseSignal(s string) (*m.Signal, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // no start signal selected
	}

	letters := []rune(m.Clean(s))
	if len(letters) != 2 {
		return nil, fmt.Errorf("%w: start signal %q needs a bank and a wire letter", domain.ErrInvalidMenu, s)
	}

	return &m.Signal{Bank: letters[0], Wire: letters[1]}, nil
}

func parseWheelOrders(values []string) ([]m.WheelOrder, error) {
	orders := make([]m.WheelOrder, 0, len(values))

	for _, value := range values {
		order, err := domain.ParseWheelOrder(value)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	return orders, nil
}
