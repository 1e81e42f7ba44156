// Package benchmark contains the command that runs the benchmark harness.
package benchmark

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nathanfaucett/persistent-list/internal/bench"
	"github.com/nathanfaucett/persistent-list/internal/config"
	"github.com/nathanfaucett/persistent-list/pkg/logger"
)

// NewBenchCommand returns the command that times the persistent stack against the baselines.
func NewBenchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the list benchmarks",
		Long:  "Time pushing and walking the persistent stack, a mutable singly linked list and container/list.",
		RunE:  run,
		Args:  cobra.NoArgs,
	}

	defaultConfig := config.DefaultConfig()
	flags := cmd.Flags()

	flags.Int("size", defaultConfig.Bench.Size, "the number of sequential integers pushed into, or walked over, each list")

	flags.Int("samples", defaultConfig.Bench.Samples, "the number of timed samples taken per scenario")

	flags.Int("rounds", defaultConfig.Bench.Rounds, "the number of rounds each sample repeats the operation")

	flags.Int("parallelism", defaultConfig.Bench.Parallelism, "the number of concurrent readers in parallel scenarios")

	flags.StringSlice("scenarios", defaultConfig.Bench.Scenarios, "a comma-separated list of <op>/<kind> scenarios to run")

	flags.String("output", defaultConfig.Output, fmt.Sprintf("the result format, one of: %s, %s, %s", config.OutputTable, config.OutputJSON, config.OutputYAML))

	flags.Bool("metrics", defaultConfig.Metrics.Enabled, "write the collected prometheus metrics to stderr after the run")

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use")

	// NOTE: if you add a new flag here, update bindBenchFlagsFunc.

	cmd.PreRun = bindBenchFlagsFunc(flags)

	return cmd
}

// ReadConfig returns the harness configuration, merging defaults, the config
// file, PSTACK_* environment variables and flags.
func ReadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load bench config: %w", err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bench config: %w", err)
	}

	return cfg, nil
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := ReadConfig()
	if err != nil {
		return err
	}

	if err := cfg.Verify(); err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	reg := prometheus.NewRegistry()
	runner, err := bench.NewRunner(cfg.Bench, bench.WithLogger(log), bench.WithRegisterer(reg))
	if err != nil {
		return err
	}

	log.Info("starting benchmarks",
		zap.Int("size", cfg.Bench.Size),
		zap.Int("samples", cfg.Bench.Samples),
		zap.Int("rounds", cfg.Bench.Rounds),
		zap.Strings("scenarios", cfg.Bench.Scenarios),
	)

	results, err := runner.Run(cmd.Context())
	if err != nil {
		log.Error("benchmark failed", zap.Error(err))
		return err
	}

	if err := writeResults(cmd.OutOrStdout(), cfg.Output, results); err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		return writeMetrics(cmd.ErrOrStderr(), reg)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, f := range families {
		if err := enc.Encode(f); err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
	}
	return nil
}
