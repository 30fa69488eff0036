package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/diagfmt"
	"github.com/verislang/veris/internal/lexer"
	"github.com/verislang/veris/internal/pipeline"
	"github.com/verislang/veris/internal/smt"
	"github.com/verislang/veris/internal/source"
	"github.com/verislang/veris/internal/token"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Print the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Print the parsed AST for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

var hirCmd = &cobra.Command{
	Use:   "hir <file>",
	Short: "Print the lowered HIR for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runHIR,
}

var mirCmd = &cobra.Command{
	Use:   "mir <file>",
	Short: "Print the lowered MIR for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMIR,
}

var smtCmd = &cobra.Command{
	Use:   "smt <file>",
	Short: "Print the emitted SMT-LIB for a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSMT,
}

func runTokens(cmd *cobra.Command, args []string) error {
	path := args[0]
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	for {
		tok := lx.Next()
		fmt.Fprintf(cmd.OutOrStdout(), "%-4d %-18s %q\n", tok.Span.Start, kindName(tok.Kind), tok.Text)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

func runAST(cmd *cobra.Command, args []string) error {
	path, maxDiagnostics, err := debugArgs(cmd, args)
	if err != nil {
		return err
	}
	fs := source.NewFileSetWithBase(".")
	fid, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	file := fs.Get(fid)
	bag := diag.NewBag(maxDiagnostics)
	compiled, _ := pipeline.Compile(file, bag)
	if compiled.Module == nil {
		return reportAndExit(cmd, bag, fs)
	}
	dumpModule(cmd.OutOrStdout(), compiled.Builder, compiled.Module)
	if bag.HasErrors() {
		return reportAndExit(cmd, bag, fs)
	}
	return nil
}

func runHIR(cmd *cobra.Command, args []string) error {
	path, maxDiagnostics, err := debugArgs(cmd, args)
	if err != nil {
		return err
	}
	fs := source.NewFileSetWithBase(".")
	fid, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	file := fs.Get(fid)
	bag := diag.NewBag(maxDiagnostics)
	compiled, _ := pipeline.Compile(file, bag)
	if compiled.HIR == nil {
		return reportAndExit(cmd, bag, fs)
	}
	dumpHIR(cmd.OutOrStdout(), compiled.HIR)
	if bag.HasErrors() {
		return reportAndExit(cmd, bag, fs)
	}
	return nil
}

func runMIR(cmd *cobra.Command, args []string) error {
	path, maxDiagnostics, err := debugArgs(cmd, args)
	if err != nil {
		return err
	}
	fs := source.NewFileSetWithBase(".")
	fid, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	file := fs.Get(fid)
	bag := diag.NewBag(maxDiagnostics)
	compiled, _ := pipeline.Compile(file, bag)
	if compiled.MIR == nil {
		return reportAndExit(cmd, bag, fs)
	}
	dumpMIR(cmd.OutOrStdout(), compiled.MIR)
	if bag.HasErrors() {
		return reportAndExit(cmd, bag, fs)
	}
	return nil
}

func runSMT(cmd *cobra.Command, args []string) error {
	path, maxDiagnostics, err := debugArgs(cmd, args)
	if err != nil {
		return err
	}
	fs := source.NewFileSetWithBase(".")
	fid, err := fs.Load(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	file := fs.Get(fid)
	bag := diag.NewBag(maxDiagnostics)
	compiled, _ := pipeline.Compile(file, bag)
	if compiled.LIR == nil {
		return reportAndExit(cmd, bag, fs)
	}
	fmt.Fprint(cmd.OutOrStdout(), smt.Emit(compiled.LIR))
	if bag.HasErrors() {
		return reportAndExit(cmd, bag, fs)
	}
	return nil
}

func debugArgs(cmd *cobra.Command, args []string) (path string, maxDiagnostics int, err error) {
	maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return "", 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return args[0], maxDiagnostics, nil
}

// reportAndExit prints the bag's diagnostics and exits with exitCompileError
// — a debug subcommand never partially succeeds past the first bag error.
func reportAndExit(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{Color: useColor, Context: 2})
	os.Exit(exitCompileError)
	return nil
}

func kindName(k token.Kind) string {
	return fmt.Sprintf("Kind(%d)", k)
}
