package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthands/monkey/internal/report"
	"github.com/agenthands/monkey/pkg/compiler/lexer"
	"github.com/agenthands/monkey/pkg/compiler/parser"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse source and print the program",
		Long: `Parses Monkey source and prints the resulting statements.

Diagnostics are written to stderr as line:col: message. The command exits
with status 1 when any diagnostic was reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			name, src, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg).With("source", name)
			p := parser.New(lexer.NewScanner(src), parser.WithLogger(logger))
			program := p.ParseProgram()

			if err := report.WriteProgram(cmd.OutOrStdout(), program, cfg.Output.Format); err != nil {
				return fmt.Errorf("write program: %w", err)
			}

			diags := p.Diagnostics()
			if len(diags) == 0 {
				return nil
			}
			if err := report.WriteDiagnostics(cmd.ErrOrStderr(), diags, cfg.ColorEnabled()); err != nil {
				return fmt.Errorf("write diagnostics: %w", err)
			}
			return errDiagnostics
		},
	}
}
