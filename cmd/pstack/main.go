package main

import (
	"os"

	"github.com/nathanfaucett/persistent-list/cmd"
	"github.com/nathanfaucett/persistent-list/cmd/benchmark"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	benchCmd := benchmark.NewBenchCommand()
	rootCmd.AddCommand(benchCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
