package cmd

import (
	"github.com/spf13/cobra"

	"bombe.dev/pkg/bombe/internal/domain"
)

type cribOptions struct {
	crib       string
	ciphertext string
	offset     int
}

// menuCmd represents the menu command.
var menuCmd = newMenuCmd()

func newMenuCmd() *cobra.Command {
	var opts cribOptions

	var scan bool

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show the menu for a crib",
		Long: `Show the menu built by placing the crib against the ciphertext at --offset.

With --scan, list every offset where no crib letter lines up with the same
ciphertext letter, since the machine never enciphers a letter to itself.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Menu(cmd.Context(), domain.MenuArgs{
				Crib:       opts.crib,
				Ciphertext: opts.ciphertext,
				Offset:     opts.offset,
				Scan:       scan,
			})
		},
	}

	configureCribFlags(cmd, &opts)
	cmd.Flags().BoolVar(&scan, "scan", false, "list the feasible crib offsets instead of one menu")

	return cmd
}

func configureCribFlags(cmd *cobra.Command, opts *cribOptions) {
	cmd.Flags().StringVar(&opts.crib, "crib", "", "plaintext believed to be in the message")
	cmd.Flags().StringVar(&opts.ciphertext, "ciphertext", "", "the intercepted ciphertext")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "index of the ciphertext letter under the first crib letter")
	cobra.CheckErr(cmd.MarkFlagRequired("crib"))
	cobra.CheckErr(cmd.MarkFlagRequired("ciphertext"))
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
