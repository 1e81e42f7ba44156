// Package config contains the configuration of the pstack benchmark harness.
package config

import (
	"errors"
	"fmt"
	"slices"
)

const (
	DefaultSize        = 1024
	DefaultSamples     = 10
	DefaultRounds      = 100
	DefaultParallelism = 4

	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// DefaultScenarios are the scenarios run when none are configured.
var DefaultScenarios = []string{
	"push/persistent",
	"push/singlylinkedlist",
	"push/containerlist",
	"iter/persistent",
	"iter/singlylinkedlist",
	"iter/containerlist",
	"iter-parallel/persistent",
}

var (
	ErrInvalidSize        = errors.New("config 'bench.size' must be greater than zero")
	ErrInvalidSamples     = errors.New("config 'bench.samples' must be greater than zero")
	ErrInvalidRounds      = errors.New("config 'bench.rounds' must be greater than zero")
	ErrInvalidParallelism = errors.New("config 'bench.parallelism' must be greater than zero")
)

// BenchConfig defines what the harness measures.
type BenchConfig struct {
	// Size is the number of sequential integers pushed into, or iterated over, each list.
	Size int

	// Samples is the number of timed samples taken per scenario.
	Samples int

	// Rounds is the number of times a sample repeats the operation.
	Rounds int

	// Parallelism is the number of concurrent readers used by parallel scenarios.
	Parallelism int

	// Scenarios lists the scenarios to run, as <op>/<kind>.
	Scenarios []string
}

type LogConfig struct {
	// Format is the log format to use in the log output (e.g. 'text' or 'json')
	Format string

	// Level is the log level to use in the log output (e.g. 'none', 'debug', or 'info')
	Level string
}

type MetricsConfig struct {
	// Enabled writes the collected prometheus metrics to stderr after the run.
	Enabled bool
}

type Config struct {
	Bench   BenchConfig
	Log     LogConfig
	Metrics MetricsConfig

	// Output is the result format: table, json or yaml.
	Output string
}

// DefaultConfig returns the harness defaults.
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Size:        DefaultSize,
			Samples:     DefaultSamples,
			Rounds:      DefaultRounds,
			Parallelism: DefaultParallelism,
			Scenarios:   slices.Clone(DefaultScenarios),
		},
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
		Output: OutputTable,
	}
}

// Verify returns an error if one of the counts in c is not positive.
func (c BenchConfig) Verify() error {
	if c.Size <= 0 {
		return ErrInvalidSize
	}
	if c.Samples <= 0 {
		return ErrInvalidSamples
	}
	if c.Rounds <= 0 {
		return ErrInvalidRounds
	}
	if c.Parallelism <= 0 {
		return ErrInvalidParallelism
	}
	return nil
}

// Verify returns an error if c holds a value the harness cannot run with.
func (c *Config) Verify() error {
	if err := c.Bench.Verify(); err != nil {
		return err
	}

	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("config 'log.format' must be one of ['text', 'json'], got %q", c.Log.Format)
	}

	if !slices.Contains([]string{"none", "debug", "info", "warn", "error", "panic", "fatal"}, c.Log.Level) {
		return fmt.Errorf("config 'log.level' must be one of ['none', 'debug', 'info', 'warn', 'error', 'panic', 'fatal'], got %q", c.Log.Level)
	}

	if !slices.Contains([]string{OutputTable, OutputJSON, OutputYAML}, c.Output) {
		return fmt.Errorf("config 'output' must be one of ['%s', '%s', '%s'], got %q", OutputTable, OutputJSON, OutputYAML, c.Output)
	}

	return nil
}
