// Command kinda transforms fuzzy kinda-lang source into a host scripting
// language and can statistically check the constructs it emits, adapted
// from the teacher's cmd/chaos-runner entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "kinda",
	Short: "A fuzzy-logic source-to-source transformer and runtime",
	Long: `kinda compiles source files written with tilde-prefixed fuzzy
constructs (~sometimes, ~maybe, ~ish, ~kinda_repeat, ...) into ordinary
host-language source, backed by a seeded, personality-driven runtime that
decides probabilistically whether each construct fires.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./kinda.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(checkCmd)
}

// Commands are defined in separate files:
// - transformCmd in transform.go
// - checkCmd in check.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
