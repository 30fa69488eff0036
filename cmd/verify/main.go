// Command verify is the veris CLI: it drives one or more .veri files through
// the lowering pipeline and an SMT solver, reporting every validity scope
// that came back sat as a counterexample-bearing diagnostic.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verislang/veris/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "verify [flags] <file>...",
	Short: "Verify annotated source files against their contracts",
	Long: `verify lowers each file through HIR, MIR and LIR, emits SMT-LIB for
every validity scope, and asks an external solver whether any scope's
negated obligation is satisfiable. A sat scope is a counterexample.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVerify,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(hirCmd)
	rootCmd.AddCommand(mirCmd)
	rootCmd.AddCommand(smtCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().Bool("output-smt", false, "print the emitted SMT-LIB before verification")
	rootCmd.Flags().String("solver", "z3", "path to the SMT solver binary")
	rootCmd.Flags().StringArray("solver-arg", nil, "extra argument to pass to the solver (repeatable)")
	rootCmd.Flags().Bool("per-scope", false, "spawn one solver invocation per validity scope instead of per file")
	rootCmd.Flags().Bool("no-cache", false, "skip the on-disk verdict cache")
	rootCmd.Flags().String("ui", "auto", "progress UI for multi-file runs (auto|on|off)")
	rootCmd.Flags().Bool("json", false, "emit diagnostics as JSON instead of pretty text")
	rootCmd.Flags().Bool("sarif", false, "select SARIF diagnostic output instead of pretty text (the SARIF renderer writes nothing)")
	rootCmd.Flags().Int("jobs", 0, "max parallel files verified at once (0=auto)")

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress progress and the passed summary line")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-phase timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 256, "maximum number of diagnostics to collect per file")
	rootCmd.PersistentFlags().Int("timeout", 10, "per-file solver timeout in seconds (0=none)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// isTerminal reports whether f is attached to an interactive terminal —
// --ui auto and --color auto both key off this.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
