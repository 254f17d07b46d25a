package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agenthands/monkey/internal/repl"
)

func newReplCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse lines interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			// Log output would corrupt the alternate screen.
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			if !opts.verbose {
				logger = nil
			}

			prog := tea.NewProgram(
				repl.New(cfg.ColorEnabled(), logger),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := prog.Run(); err != nil {
				return fmt.Errorf("repl: %w", err)
			}
			return nil
		},
	}
}
