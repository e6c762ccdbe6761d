// internal/cli/analyze.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"oligotile/core/fasta"
	"oligotile/internal/appshell"
	"oligotile/internal/config"
	"oligotile/internal/pipeline"
	"oligotile/internal/writers"
)

func newAnalyzeCommand() *cobra.Command {
	d := config.Defaults()
	cmd := &cobra.Command{
		Use:   "analyze [input]",
		Short: "Report length, GC, Tm and folding energies per sequence",
		Example: `  oligotile analyze oligos.fa
  echo ACGTACGTACGTACGTACGT | oligotile analyze -o json -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
	f := cmd.Flags()
	f.StringP("input", "i", d.Input, "input FASTA or raw sequence ('-' for stdin)")
	f.String("name", d.Name, "name for input without a FASTA header")
	f.Float64("na", d.Na, "Na+ concentration (mM)")
	f.Float64("k", d.K, "K+ concentration (mM)")
	f.Float64("oligo-conc", d.OligoConc, "oligo concentration (nM)")
	f.Int("workers", d.Workers, "sequences analyzed concurrently")
	f.StringP("output", "o", d.Output, "output format: text, json, jsonl, yaml")
	f.Bool("header", d.Header, "print a header row in text output")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	c, _, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if !slices.Contains(writers.AnalysisFormats(), c.Output) {
		return withCode(appshell.ExitUsage,
			fmt.Errorf("%w %q (have %v)", writers.ErrUnknownFormat, c.Output, writers.AnalysisFormats()))
	}
	log, err := newLogger(c, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	frags, err := fasta.ReadPath(ctx, c.Input, c.Name)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return err
		}
		return withCode(appshell.ExitUsage, err)
	}
	rows, err := pipeline.Analyze(ctx, frags, c.OptimizerOptions(), c.Workers)
	if err != nil {
		return err
	}
	log.Debug("analyzed", "sequences", len(rows))
	return emit(cmd.OutOrStdout(), func(w io.Writer) error {
		return writers.WriteAnalysis(c.Output, w, rows, writers.Options{Header: c.Header})
	})
}
