// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/taskbench/internal/config"
	"github.com/katalvlaran/taskbench/internal/logging"
	"github.com/katalvlaran/taskbench/internal/suite"
	"github.com/katalvlaran/taskbench/metrics"
)

// flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

type runFlags struct {
	iterations int
	metrics    bool
	plain      bool
}

func newRootCmd() *cobra.Command {
	var rf rootFlags
	root := &cobra.Command{
		Use:          "taskbench",
		Short:        "Measure lifecycle-guarded parallel tasks",
		Long:         "taskbench times shortest-path, sorting and sparse-product tasks under\nsequential, static and fork/join strategies and checks every output\nagainst the sequential reference.",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&rf.configPath, "config", "c", "", "suite file (default: built-in reference suite)")
	pf.StringVar(&rf.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")
	pf.StringVar(&rf.logFormat, "log-format", "", "override log.format (text|json)")

	root.AddCommand(newRunCmd(&rf), newListCmd(&rf))
	return root
}

func newRunCmd(rf *rootFlags) *cobra.Command {
	var fl runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every variant of the suite and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Perf.Iterations = fl.iterations
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			log, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			rec := metrics.NewRecorder(reg, cfg.Perf.MaxTime)
			runner := suite.New(cfg, suite.WithLogger(log), suite.WithRecorder(rec))
			outcomes, runErr := runner.Run(cmd.Context())

			out := cmd.OutOrStdout()
			if fl.plain || !isTerminal(out) {
				err = renderPlain(out, outcomes)
			} else {
				_, err = fmt.Fprintln(out, renderTable(outcomes))
			}
			if err != nil {
				return err
			}
			if fl.metrics {
				if err := metrics.WriteText(out, reg); err != nil {
					return err
				}
			}
			if runErr != nil {
				return runErr
			}
			return suite.Err(outcomes)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&fl.iterations, "iterations", "n", 0, "override perf.iterations")
	f.BoolVar(&fl.metrics, "metrics", false, "print Prometheus text metrics after the report")
	f.BoolVar(&fl.plain, "plain", false, "print one line per variant even on a terminal")
	return cmd
}

func newListCmd(rf *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the variants the suite would run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(rf)
			if err != nil {
				return err
			}
			return renderPlan(cmd.OutOrStdout(), suite.Plan(cfg))
		},
	}
}

// loadConfig reads the suite file, or the defaults, and applies the log
// overrides.
func loadConfig(rf *rootFlags) (config.Config, error) {
	cfg := config.Default()
	if rf.configPath != "" {
		var err error
		if cfg, err = config.Load(rf.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if rf.logLevel != "" {
		cfg.Log.Level = rf.logLevel
	}
	if rf.logFormat != "" {
		cfg.Log.Format = rf.logFormat
	}
	return cfg, cfg.Validate()
}

func newLogger(cmd *cobra.Command, cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Config{Level: level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()})
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
