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
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-bitintr/bitintr"
	"github.com/ajroetker/go-bitintr/bitintr/contrib/verify"
	"github.com/ajroetker/go-bitintr/internal/logging"
)

// ErrMismatch is returned by the verify command when the dispatched and
// software results disagree on at least one input.
var ErrMismatch = errors.New("hardware and software results differ")

// app carries the state shared by the subcommands of one invocation.
type app struct {
	envFile string
	cfg     Config

	stdout, stderr io.Writer
	logger         *zap.Logger
	registry       *prometheus.Registry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, logger: logging.DiscardLogger()}

	root := &cobra.Command{
		Use:           "bitintr",
		Short:         "Inspect and verify portable bit manipulation intrinsics",
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", "", "load BITINTR_* variables from a dotenv file")
	pf.String("log-level", "", "log level: debug, info, warn or error (env BITINTR_LOG_LEVEL)")
	pf.String("log-format", "", "log format: console or json (env BITINTR_LOG_FORMAT)")

	root.AddCommand(a.infoCmd(), a.opsCmd(), a.evalCmd(), a.verifyCmd())
	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.envFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	if err := ValidateConfig(&cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.registry = prometheus.NewRegistry()
	logCfg := logging.DefaultConfig()
	logCfg.Format = cfg.LogFormat
	logCfg.Level = cfg.LogLevel
	logCfg.Output = a.stderr
	logCfg.Registerer = a.registry
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the detected CPU features and the selected implementations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := bitintr.CPUFeatures()
			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "dispatch level:\t%s\n", bitintr.CurrentName())
			fmt.Fprintf(w, "vendor:\t%s\n", orNone(f.Vendor))
			fmt.Fprintf(w, "features:\t%s\n", orNone(strings.Join(featureNames(f), " ")))
			fmt.Fprintf(w, "checked build:\t%t\n", bitintr.Checked())
			fmt.Fprintf(w, "software forced:\t%t\n", bitintr.NoHardwareEnv())
			fmt.Fprintln(w, "implementations:")
			impls := bitintr.Implementations()
			for _, name := range slices.Sorted(maps.Keys(impls)) {
				fmt.Fprintf(w, "  %s\t%s\n", name, impls[name])
			}
			a.logger.Debug("reported dispatch state",
				zap.String("level", bitintr.CurrentName()),
				zap.Int("ops", len(impls)))
			return w.Flush()
		},
	}
}

func (a *app) opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the operations known to eval and verify",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "GROUP\tUSAGE\tSUMMARY")
			for _, op := range verify.Ops() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", op.Group, op.Usage(), op.Summary)
			}
			return w.Flush()
		},
	}
}

func featureNames(f bitintr.Features) []string {
	var names []string
	for _, feat := range []struct {
		name string
		on   bool
	}{
		{"popcnt", f.POPCNT},
		{"abm", f.ABM},
		{"bmi1", f.BMI1},
		{"bmi2", f.BMI2},
		{"tbm", f.TBM},
		{"armv8", f.ARMv8},
	} {
		if feat.on {
			names = append(names, feat.name)
		}
	}
	return names
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
