// Copyright 2025 go-bitintr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-bitintr/bitintr/contrib/verify"
	"github.com/ajroetker/go-bitintr/bitintr/contrib/workerpool"
)

func (a *app) verifyCmd() *cobra.Command {
	var (
		widths  []int
		ops     []string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the dispatched operations against their software algorithms",
		Long: `Sweep every selected operation and integer type, comparing the dispatched
implementation with the software algorithm bit for bit. 8 and 16-bit first
operands are enumerated exhaustively; wider operands are sampled
deterministically from --seed.

The command exits with status 1 if any input produces different results.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.applyVerifyFlags(cmd); err != nil {
				return err
			}
			return a.runVerify(cmd.Context(), widths, ops, verbose)
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&widths, "widths", verify.Widths, "bit widths to verify")
	f.StringSliceVar(&ops, "ops", nil, "operations to verify (default all)")
	f.BoolVarP(&verbose, "verbose", "v", false, "print every result, not only failures")
	f.Int("samples", 0, "random first operands per 32 and 64-bit type (env BITINTR_SAMPLES)")
	f.Int("partners", 0, "random second operands per type (env BITINTR_PARTNERS)")
	f.Uint64("seed", 0, "sampling seed (env BITINTR_SEED)")
	f.Int("workers", 0, "worker goroutines, 0 for GOMAXPROCS (env BITINTR_WORKERS)")
	f.Duration("timeout", 0, "abort the run after this long (env BITINTR_TIMEOUT)")
	f.String("metrics-file", "", "write Prometheus metrics for the run to this file (env BITINTR_METRICS_FILE)")
	return cmd
}

// applyVerifyFlags overrides the environment configuration with the verify
// flags set on the command line.
func (a *app) applyVerifyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("samples") {
		a.cfg.Samples, _ = flags.GetInt("samples")
	}
	if flags.Changed("partners") {
		a.cfg.Partners, _ = flags.GetInt("partners")
	}
	if flags.Changed("seed") {
		a.cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("workers") {
		a.cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("timeout") {
		a.cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("metrics-file") {
		a.cfg.MetricsFile, _ = flags.GetString("metrics-file")
	}
	if err := ValidateConfig(&a.cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (a *app) runVerify(ctx context.Context, widths []int, ops []string, verbose bool) error {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	pool := workerpool.New(a.cfg.Workers)
	defer pool.Close()

	metrics := newVerifyMetrics(a.registry)
	log := a.logger
	log.Info("starting verification",
		zap.Ints("widths", widths),
		zap.Strings("ops", ops),
		zap.Int("samples", a.cfg.Samples),
		zap.Int("partners", a.cfg.Partners),
		zap.Uint64("seed", a.cfg.Seed),
		zap.Int("workers", pool.NumWorkers()))

	report, err := verify.Run(ctx, pool, verify.Options{
		Widths:   widths,
		Ops:      ops,
		Samples:  a.cfg.Samples,
		Partners: a.cfg.Partners,
		Seed:     a.cfg.Seed,
		OnResult: func(r verify.Result) {
			metrics.observe(r)
			fields := []zap.Field{
				zap.String("op", r.Op),
				zap.Stringer("type", r.Type),
				zap.String("implementation", r.Implementation),
				zap.Int("cases", r.Cases),
				zap.Duration("duration", r.Duration),
			}
			if r.OK() {
				log.Debug("verified", fields...)
				return
			}
			log.Warn("results differ", append(fields, zap.Int("failed", r.Failed))...)
			for _, m := range r.Mismatches {
				log.Warn("mismatch", zap.Stringer("case", m))
			}
		},
	})
	if report == nil {
		return err
	}

	metrics.finish(report, err == nil, time.Now())
	if werr := a.writeMetrics(); werr != nil {
		log.Error("failed to write metrics", zap.String("path", a.cfg.MetricsFile), zap.Error(werr))
		if err == nil {
			err = werr
		}
	}
	if perr := a.printReport(report, verbose); perr != nil && err == nil {
		err = perr
	}
	if err != nil {
		return err
	}

	log.Info("verification finished",
		zap.String("level", report.Level),
		zap.Int("results", len(report.Results)),
		zap.Int("cases", report.Cases()),
		zap.Int("failed", report.Failed()),
		zap.Duration("duration", report.Duration))
	if !report.OK() {
		return fmt.Errorf("%w: %d of %d cases", ErrMismatch, report.Failed(), report.Cases())
	}
	return nil
}

func (a *app) writeMetrics() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(a.cfg.MetricsFile, a.registry)
}

// printReport writes a table of the results to stdout, followed by the
// mismatching inputs and a summary line.
func (a *app) printReport(report *verify.Report, verbose bool) error {
	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	header := false
	for _, r := range report.Results {
		if r.OK() && !verbose {
			continue
		}
		if !header {
			fmt.Fprintln(w, "OP\tTYPE\tIMPLEMENTATION\tCASES\tFAILED\tTIME")
			header = true
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			r.Op, r.Type, r.Implementation, r.Cases, r.Failed, r.Duration.Round(time.Microsecond))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for _, r := range report.Results {
		for _, m := range r.Mismatches {
			fmt.Fprintf(a.stdout, "  %s\n", m)
		}
	}

	status := "ok"
	if !report.OK() {
		status = "FAILED"
	}
	_, err := fmt.Fprintf(a.stdout, "%s: %d results, %d cases, %d mismatches at level %s in %s\n",
		status, len(report.Results), report.Cases(), report.Failed(), report.Level,
		report.Duration.Round(time.Millisecond))
	return err
}
