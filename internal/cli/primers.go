// internal/cli/primers.go
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

func newPrimersCommand() *cobra.Command {
	d := config.Defaults()
	cmd := &cobra.Command{
		Use:   "primers [input]",
		Short: "Pick forward and reverse amplification primers per fragment",
		Long: `Pick forward and reverse amplification primers per fragment.

The forward primer is the shortest prefix of the fragment, and the reverse
primer the shortest prefix of its reverse complement, whose Wallace Tm
(2·AT + 4·GC) and GC% fall inside the windows. An end with no such prefix
falls back to its outermost 60 bases (marked '*' in text output).`,
		Example: `  oligotile primers gene.fa
  oligotile primers --primer-tm-max 70 -o json gene.fa`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPrimers,
	}
	f := cmd.Flags()
	f.StringP("input", "i", d.Input, "input FASTA or raw sequence ('-' for stdin)")
	f.String("name", d.Name, "name for input without a FASTA header")
	f.Int("primer-min-length", d.PrimerMinLength, "shortest primer tried")
	f.Int("primer-max-length", d.PrimerMaxLength, "longest primer tried")
	f.Float64("primer-gc-min", d.PrimerGCMin, "minimum primer GC%")
	f.Float64("primer-gc-max", d.PrimerGCMax, "maximum primer GC%")
	f.Float64("primer-tm-min", d.PrimerTmMin, "minimum primer Wallace Tm (°C)")
	f.Float64("primer-tm-max", d.PrimerTmMax, "maximum primer Wallace Tm (°C)")
	f.Int("workers", d.Workers, "fragments processed concurrently")
	f.StringP("output", "o", d.Output, "output format: text, fasta, json, jsonl, yaml")
	f.Bool("header", d.Header, "print a header row in text output")
	return cmd
}

func runPrimers(cmd *cobra.Command, args []string) error {
	c, _, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if !slices.Contains(writers.PrimerFormats(), c.Output) {
		return withCode(appshell.ExitUsage,
			fmt.Errorf("%w %q (have %v)", writers.ErrUnknownFormat, c.Output, writers.PrimerFormats()))
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
	rows, err := pipeline.Primers(ctx, frags, c.PrimerOptions(), c.Workers)
	if err != nil {
		return err
	}
	fallbacks := 0
	for _, r := range rows {
		if r.ForwardFallback {
			fallbacks++
		}
		if r.ReverseFallback {
			fallbacks++
		}
	}
	if fallbacks > 0 {
		log.Warn("no primer met the windows at some ends; used fallback", "ends", fallbacks)
	}
	log.Debug("primers designed", "fragments", len(rows))
	return emit(cmd.OutOrStdout(), func(w io.Writer) error {
		return writers.WritePrimers(c.Output, w, rows, writers.Options{Header: c.Header})
	})
}
