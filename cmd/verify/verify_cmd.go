package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/verislang/veris/internal/cache"
	"github.com/verislang/veris/internal/config"
	"github.com/verislang/veris/internal/diag"
	"github.com/verislang/veris/internal/diagfmt"
	"github.com/verislang/veris/internal/pipeline"
	"github.com/verislang/veris/internal/source"
)

// exit codes, per the CLI contract: 0 every file verified, 1 some validity
// scope came back sat, 2 a file failed to parse or lower.
const (
	exitOK           = 0
	exitCounterexample = 1
	exitCompileError = 2
)

func runVerify(cmd *cobra.Command, paths []string) error {
	flags := cmd.Flags()

	outputSMT, err := flags.GetBool("output-smt")
	if err != nil {
		return fmt.Errorf("failed to get output-smt flag: %w", err)
	}
	solverPath, err := flags.GetString("solver")
	if err != nil {
		return fmt.Errorf("failed to get solver flag: %w", err)
	}
	solverArgs, err := flags.GetStringArray("solver-arg")
	if err != nil {
		return fmt.Errorf("failed to get solver-arg flag: %w", err)
	}
	perScope, err := flags.GetBool("per-scope")
	if err != nil {
		return fmt.Errorf("failed to get per-scope flag: %w", err)
	}
	noCache, err := flags.GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	wantJSON, err := flags.GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	wantSarif, err := flags.GetBool("sarif")
	if err != nil {
		return fmt.Errorf("failed to get sarif flag: %w", err)
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timeoutSecs, err := cmd.Root().PersistentFlags().GetInt("timeout")
	if err != nil {
		return fmt.Errorf("failed to get timeout flag: %w", err)
	}

	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	if wantJSON && wantSarif {
		return fmt.Errorf("--json and --sarif are mutually exclusive")
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	fileCfg, _, err := config.LoadFromDir(cwd)
	if err != nil {
		return fmt.Errorf("failed to load veris.toml: %w", err)
	}
	merged := config.Merge(config.Defaults(), fileCfg)

	override := config.Config{}
	if flags.Changed("solver") {
		override.Solver.Path = solverPath
	}
	if cmd.Root().PersistentFlags().Changed("timeout") {
		override.Solver.Timeout = timeoutSecs
	}
	if cmd.Root().PersistentFlags().Changed("color") {
		override.Output.Color = colorFlag
	}
	merged = config.Merge(merged, override)
	// Merge keeps the base value for a zero override, so an explicit
	// --timeout 0 (no timeout) is applied directly.
	if cmd.Root().PersistentFlags().Changed("timeout") {
		merged.Solver.Timeout = timeoutSecs
	}

	var diskCache *cache.Disk
	if !noCache {
		diskCache, err = cache.OpenDefault("veris")
		if err != nil {
			return fmt.Errorf("failed to open verdict cache: %w", err)
		}
	}

	opts := pipeline.Options{
		SolverPath:     merged.Solver.Path,
		SolverArgs:     solverArgs,
		Timeout:        time.Duration(merged.Solver.Timeout) * time.Second,
		PerScope:       perScope,
		NoCache:        noCache,
		Cache:          diskCache,
		EnableTimings:  showTimings,
		MaxDiagnostics: maxDiagnostics,
	}

	var results []*pipeline.Result
	if !quiet && !wantJSON && !wantSarif && shouldUseTUI(mode, len(paths)) {
		results, err = runVerifyFilesWithUI(cmd.Context(), "verify", paths, opts, jobs)
	} else {
		results, err = pipeline.VerifyFiles(cmd.Context(), paths, opts, jobs)
	}
	if err != nil {
		return fmt.Errorf("verification run failed: %w", err)
	}

	useColor := merged.Output.Color == "on" || (merged.Output.Color == "auto" && isTerminal(os.Stdout))
	color.NoColor = !useColor

	exitCode := exitOK
	for _, res := range results {
		if outputSMT {
			fmt.Fprintf(os.Stdout, "== %s: SMT-LIB ==\n%s\n", res.Path, res.SMT)
		}

		fs := loadRenderFileSet(res.Path)
		renderResult(res, fs, wantJSON, wantSarif, useColor, quiet)

		if showTimings && !quiet {
			printTimings(os.Stdout, res)
		}

		code := outcomeExitCode(res)
		if code > exitCode {
			exitCode = code
		}
	}

	if exitCode != exitOK {
		os.Exit(exitCode)
	}
	return nil
}

// loadRenderFileSet re-reads path into its own FileSet purely for
// diagnostic rendering (source snippets, line/col resolution). It is kept
// separate from the FileSet pipeline.VerifyFiles loads internally for
// verification, since each worker there owns an independent FileSet and
// none of them is returned to the caller.
func loadRenderFileSet(path string) *source.FileSet {
	fs := source.NewFileSetWithBase(filepath.Dir(path))
	_, _ = fs.Load(path)
	return fs
}

func outcomeExitCode(res *pipeline.Result) int {
	if res.Bag.HasErrors() && !hasVerificationFailure(res) {
		return exitCompileError
	}
	if !res.Passed() {
		return exitCounterexample
	}
	return exitOK
}

func hasVerificationFailure(res *pipeline.Result) bool {
	for _, d := range res.Bag.Items() {
		if d.Code != diag.LowerVerificationFailed {
			return false
		}
	}
	return len(res.Bag.Items()) > 0
}

func renderResult(res *pipeline.Result, fs *source.FileSet, wantJSON, wantSarif, useColor, quiet bool) {
	switch {
	case wantJSON:
		opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
		_ = diagfmt.JSON(os.Stdout, res.Bag, fs, opts)
	case wantSarif:
		meta := diagfmt.SarifRunMeta{ToolName: "verify"}
		diagfmt.Sarif(os.Stdout, res.Bag, fs, meta)
	default:
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, res.Bag, fs, diagfmt.PrettyOpts{
				Color:     useColor,
				Context:   2,
				ShowNotes: true,
			})
		}
		if !quiet && res.Passed() {
			fmt.Fprintf(os.Stdout, "%s: verified\n", res.Path)
		}
	}
}

func printTimings(out *os.File, res *pipeline.Result) {
	for _, p := range res.Timing.Phases {
		fmt.Fprintf(out, "%s: %s %.1f ms\n", res.Path, p.Name, p.DurationMS)
	}
}
