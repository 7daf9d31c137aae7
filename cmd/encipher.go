package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bombe.dev/pkg/bombe/internal/domain"
	"bombe.dev/pkg/bombe/internal/domain/rotor"
	m "bombe.dev/pkg/bombe/internal/model"
)

// machineFlagBindings are the flags that describe the machine's settings.
var machineFlagBindings = []flagBinding{
	{flag: reflectorFlagName, key: reflectorConfigKey},
	{flag: wheelsFlagName, key: wheelsConfigKey},
	{flag: ringsFlagName, key: ringsConfigKey},
	{flag: plugboardFlagName, key: plugboardConfigKey},
}

type cipherOptions struct {
	reflector string
	wheels    string
	rings     string
	plugboard string
	positions string
	groups    int
	expect    string
	file      string
}

// encipherCmd represents the encipher command.
var encipherCmd = newEncipherCmd()

// decipherCmd represents the decipher command.
var decipherCmd = newDecipherCmd()

func newEncipherCmd() *cobra.Command {
	return newCipherCmd("encipher", "Encipher text on an Enigma machine", false)
}

func newDecipherCmd() *cobra.Command {
	return newCipherCmd("decipher", "Decipher text on an Enigma machine", true)
}

func newCipherCmd(name, short string, decipher bool) *cobra.Command {
	var opts cipherOptions

	cmd := &cobra.Command{
		Use:   name + " [text...]",
		Short: short,
		Long: short + `.

The text is taken from the arguments, from --file, or from standard input.
Letters outside a-z are dropped after accents are removed; the wheels step
before each letter as on the real machine.`,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindCommandFlags(cmd, machineFlagBindings)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := machineSettings()
			if err != nil {
				return err
			}

			text, err := textSource.Text(args, m.Path(opts.file))
			if err != nil {
				return err
			}

			return workflow.Encipher(cmd.Context(), domain.EncipherArgs{
				Catalog:   m.Path(viper.GetString(catalogConfigKey)),
				Settings:  settings,
				Positions: opts.positions,
				Text:      text,
				Decipher:  decipher,
				Groups:    opts.groups,
				Expect:    opts.expect,
			})
		},
	}

	configureMachineFlags(cmd, &opts)

	cmd.Flags().StringVar(&opts.positions, "positions", "aaa", "letters shown in the left, middle and right windows")
	cmd.Flags().IntVar(&opts.groups, "groups", 0, "print the output in groups of N letters")
	cmd.Flags().StringVar(&opts.expect, "expect", "", "compare the output with this text and fail with a diff on mismatch")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read the text from a file")

	return cmd
}

func configureMachineFlags(cmd *cobra.Command, opts *cipherOptions) {
	cmd.Flags().StringVar(&opts.reflector, reflectorFlagName, viper.GetString(reflectorConfigKey), "reflector name")
	cmd.Flags().StringVar(&opts.wheels, wheelsFlagName, viper.GetString(wheelsConfigKey), "left, middle and right wheel names")
	cmd.Flags().StringVar(&opts.rings, ringsFlagName, viper.GetString(ringsConfigKey), "left, middle and right ring settings (1-26 or a-z)")
	cmd.Flags().StringVar(&opts.plugboard, plugboardFlagName, viper.GetString(plugboardConfigKey), "plugboard pairs such as \"ab cd ef\"")
}

// machineSettings reads the machine keys, whichever of flag, env or config
// file supplied them.
func machineSettings() (rotor.Settings, error) {
	order, err := domain.ParseWheelOrder(viper.GetString(wheelsConfigKey))
	if err != nil {
		return rotor.Settings{}, err
	}

	rings, err := parseRings(viper.GetString(ringsConfigKey))
	if err != nil {
		return rotor.Settings{}, err
	}

	return rotor.Settings{
		Reflector: viper.GetString(reflectorConfigKey),
		Wheels:    order,
		Rings:     rings,
		Plugboard: viper.GetString(plugboardConfigKey),
	}, nil
}

func init() {
	rootCmd.AddCommand(encipherCmd)
	rootCmd.AddCommand(decipherCmd)
}
