package benchmark

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nathanfaucett/persistent-list/cmd/util"
)

// bindBenchFlagsFunc binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindBenchFlagsFunc(flags *pflag.FlagSet) func(*cobra.Command, []string) {
	return func(command *cobra.Command, args []string) {
		util.MustBindPFlag("bench.size", flags.Lookup("size"))
		util.MustBindEnv("bench.size", "PSTACK_BENCH_SIZE")

		util.MustBindPFlag("bench.samples", flags.Lookup("samples"))
		util.MustBindEnv("bench.samples", "PSTACK_BENCH_SAMPLES")

		util.MustBindPFlag("bench.rounds", flags.Lookup("rounds"))
		util.MustBindEnv("bench.rounds", "PSTACK_BENCH_ROUNDS")

		util.MustBindPFlag("bench.parallelism", flags.Lookup("parallelism"))
		util.MustBindEnv("bench.parallelism", "PSTACK_BENCH_PARALLELISM")

		util.MustBindPFlag("bench.scenarios", flags.Lookup("scenarios"))
		util.MustBindEnv("bench.scenarios", "PSTACK_BENCH_SCENARIOS")

		util.MustBindPFlag("output", flags.Lookup("output"))
		util.MustBindEnv("output", "PSTACK_OUTPUT")

		util.MustBindPFlag("metrics.enabled", flags.Lookup("metrics"))
		util.MustBindEnv("metrics.enabled", "PSTACK_METRICS_ENABLED")

		util.MustBindPFlag("log.format", flags.Lookup("log-format"))
		util.MustBindEnv("log.format", "PSTACK_LOG_FORMAT")

		util.MustBindPFlag("log.level", flags.Lookup("log-level"))
		util.MustBindEnv("log.level", "PSTACK_LOG_LEVEL")
	}
}
