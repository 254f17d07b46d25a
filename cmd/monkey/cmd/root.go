package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenthands/monkey/internal/config"
)

// errDiagnostics marks a run that completed but reported parse errors.
var errDiagnostics = errors.New("parse errors reported")

type globalOptions struct {
	cfgFile string
	format  string
	verbose bool
	noColor bool
}

// Execute runs the monkey command tree against os.Args.
func Execute() error {
	root := newRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errDiagnostics) {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "monkey",
		Short: "Monkey language front end",
		Long: `monkey scans and parses Monkey source into an abstract syntax tree.

Parse errors never stop the parser; every malformed statement is reported
and the remaining statements are still returned.

Examples:
  monkey parse program.mk
  monkey parse --format yaml program.mk
  echo 'let x = 5;' | monkey parse -
  monkey tokens program.mk
  monkey repl`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format: text, yaml, json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		newParseCmd(opts),
		newTokensCmd(opts),
		newReplCmd(opts),
		newVersionCmd(),
	)
	return root
}

// load resolves the config file and applies flag overrides.
func (o *globalOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.noColor {
		color := false
		cfg.Output.Color = &color
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
}

// readSource reads the file named by args[0], or stdin for "-" or no args.
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	return args[0], string(data), nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
