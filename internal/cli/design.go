// internal/cli/design.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"oligotile/core/fasta"
	"oligotile/core/tiling"
	"oligotile/internal/appshell"
	"oligotile/internal/config"
	"oligotile/internal/metrics"
	"oligotile/internal/pipeline"
	"oligotile/internal/writers"
	"oligotile/pkg/api"
)

func newDesignCommand() *cobra.Command {
	d := config.Defaults()
	cmd := &cobra.Command{
		Use:   "design [input]",
		Short: "Tile fragments into oligos, optionally cleaning and optimizing them",
		Long: `Tile fragments into oligos, optionally cleaning and optimizing them.

Input is multi-FASTA or a bare sequence, plain or gzip, from a file or
'-' for stdin. All fragments of one input form a single oligo pool.`,
		Example: `  oligotile design gene.fa
  oligotile design --strategy gapped --gap-length 20 --clean --optimize gene.fa.gz
  cat gene.fa | oligotile design -o json --clean -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runDesign,
	}

	f := cmd.Flags()
	f.StringP("input", "i", d.Input, "input FASTA or raw sequence ('-' for stdin)")
	f.String("name", d.Name, "name for input without a FASTA header")
	f.String("strategy", d.Strategy, "tiling strategy: simple or gapped")
	f.IntP("oligo-length", "l", d.OligoLength, "oligo length (nt)")
	f.Int("overlap-length", d.OverlapLength, "overlap between forward and reverse oligos (nt)")
	f.Int("gap-length", d.GapLength, "gap between forward oligos, gapped strategy (nt)")
	f.Bool("clean", d.Clean, "trim ends that would anneal to the wrong place")
	f.Bool("optimize", d.Optimize, "trim oligos into the GC/Tm/ΔG windows")
	f.Float64("na", d.Na, "Na+ concentration (mM)")
	f.Float64("k", d.K, "K+ concentration (mM)")
	f.Float64("oligo-conc", d.OligoConc, "oligo concentration (nM)")
	f.Float64("score-threshold", d.ScoreThreshold, "end-match score treated as a conflict")
	f.Int("trim-limit", d.TrimLimit, "max bases the cleaner trims per side")
	f.Int("end-length", d.EndLength, "terminal window scored by the cleaner (nt)")
	f.Int("max-trim", d.MaxTrim, "max bases the optimizer trims per side")
	f.Int("min-length", d.MinLength, "shortest oligo the optimizer may produce (nt)")
	f.Int("workers", d.Workers, "goroutines scoring optimizer trims")
	f.StringP("output", "o", d.Output, "output format: text, json, jsonl, fasta, yaml")
	f.Bool("header", d.Header, "print a header row in text output")
	f.Bool("pretty", d.Pretty, "draw each oligo under its row in text output (default on a terminal)")
	f.Bool("fail-on-invalid", d.FailOnInvalid, "exit 1 when every oligo is invalid")
	f.String("metrics-file", d.MetricsFile, "write run metrics in Prometheus textfile format")
	return cmd
}

func runDesign(cmd *cobra.Command, args []string) error {
	c, v, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if !slices.Contains(writers.BatchFormats(), c.Output) {
		return withCode(appshell.ExitUsage,
			fmt.Errorf("%w %q (have %v)", writers.ErrUnknownFormat, c.Output, writers.BatchFormats()))
	}
	log, err := newLogger(c, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("pretty") && !v.InConfig("pretty") && isTerminal(cmd.OutOrStdout()) {
		c.Pretty = true
	}

	ctx := cmd.Context()
	frags, err := fasta.ReadPath(ctx, c.Input, c.Name)
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return err
		}
		return withCode(appshell.ExitUsage, err)
	}

	strat, err := tiling.ByName(c.Strategy, c.TilingParams())
	if err != nil {
		return withCode(appshell.ExitUsage, err)
	}
	m := metrics.New()
	res, err := pipeline.Design(ctx, pipeline.Config{
		Strategy:        strat,
		Clean:           c.Clean,
		CleanOptions:    c.CleanerOptions(),
		Optimize:        c.Optimize,
		OptimizeOptions: c.OptimizerOptions(),
	}, frags, log, m)
	switch {
	case err == nil:
	case errors.Is(err, tiling.ErrInvalidParams), errors.Is(err, tiling.ErrEmptySequence):
		return withCode(appshell.ExitUsage, err)
	default:
		return err
	}

	batch := writers.NewBatch(res.RunID, res.Pool, parameters(c))
	if err := emit(cmd.OutOrStdout(), func(w io.Writer) error {
		return writers.WriteBatch(c.Output, w, batch, writers.Options{Header: c.Header, Pretty: c.Pretty})
	}); err != nil {
		return err
	}

	if c.MetricsFile != "" {
		if err := m.WriteTextfile(c.MetricsFile); err != nil {
			return withCode(appshell.ExitOutput, fmt.Errorf("metrics: %w", err))
		}
	}

	switch {
	case batch.TotalCount == 0:
		log.Warn("no oligos produced; every fragment is shorter than the minimum oligo length")
		return withCode(appshell.ExitNoResult, nil)
	case c.FailOnInvalid && batch.InvalidCount == batch.TotalCount:
		log.Warn("every oligo is invalid", "oligos", batch.TotalCount)
		return withCode(appshell.ExitNoResult, nil)
	}
	return nil
}

func parameters(c config.Config) api.ParametersV1 {
	p := api.ParametersV1{
		Strategy:      c.Strategy,
		OligoLength:   c.OligoLength,
		OverlapLength: c.OverlapLength,
		Clean:         c.Clean,
		Optimize:      c.Optimize,
		NaMM:          c.Na,
		KMM:           c.K,
		OligoNM:       c.OligoConc,
	}
	if c.Strategy == "gapped" {
		p.GapLength = c.GapLength
	}
	return p
}
