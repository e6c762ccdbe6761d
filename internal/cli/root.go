// Package cli is the oligotile command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"oligotile/internal/appshell"
	"oligotile/internal/config"
	"oligotile/internal/logging"
	"oligotile/internal/version"
)

// Run executes one invocation and returns the process exit code.
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(argv)
	err := root.ExecuteContext(ctx)
	if err != nil {
		if msg := err.Error(); msg != "" {
			_, _ = fmt.Fprintln(stderr, "error:", msg)
		}
		code := exitCode(err)
		if code == appshell.ExitUsage {
			_, _ = fmt.Fprintln(stderr, "Run 'oligotile --help' for usage.")
		}
		return code
	}
	return appshell.ExitOK
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "oligotile",
		Short: "Tile DNA fragments into overlapping oligos for gene synthesis",
		Long: `Tile DNA fragments into overlapping oligos for gene synthesis.

"oligotile design" splits each input fragment into forward and
reverse-complement oligos, optionally trims ends that would mis-anneal
("--clean"), and optionally trims oligos into GC, Tm and folding-energy
windows ("--optimize").

"oligotile analyze" reports per-sequence properties and "oligotile primers"
picks amplification primers at each fragment end.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.BoolP("quiet", "q", false, "suppress logging")

	root.AddCommand(newDesignCommand(), newAnalyzeCommand(), newPrimersCommand(), newVersionCommand())
	return root
}

// loadConfig resolves flags, environment and the config file for cmd.
func loadConfig(cmd *cobra.Command, args []string) (config.Config, *viper.Viper, error) {
	v := config.NewViper()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, nil, err
	}
	if len(args) > 0 {
		v.Set("input", args[0])
	}
	file, _ := cmd.Flags().GetString("config")
	c, err := config.Load(v, file)
	if err != nil {
		return config.Config{}, nil, withCode(appshell.ExitUsage, err)
	}
	return c, v, nil
}

func newLogger(c config.Config, stderr io.Writer) (*logging.Logger, error) {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, withCode(appshell.ExitUsage, err)
	}
	return logging.New(logging.Config{
		Level:   lvl,
		JSON:    c.LogFormat == "json",
		Quiet:   c.Quiet,
		Service: "oligotile",
		Output:  stderr,
	}), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "oligotile version %s\n", version.Version)
			return outputErr(err)
		},
	}
}
