package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agenthands/monkey/internal/report"
	"github.com/agenthands/monkey/pkg/compiler/lexer"
)

func newTokensCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			_, src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			return report.WriteTokens(cmd.OutOrStdout(), lexer.Collect(src), cfg.ColorEnabled())
		},
	}
}
