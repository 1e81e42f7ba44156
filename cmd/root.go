// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with PSTACK, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("PSTACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/pstack", "$HOME/.pstack", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	return &cobra.Command{
		Use:   "pstack",
		Short: "Benchmarks a persistent, structurally shared stack",
		Long: `Benchmarks a persistent, structurally shared stack.

pstack times building and walking the persistent stack against a mutable singly
linked list and the standard library's container/list.`,
		SilenceUsage: true,
	}
}
