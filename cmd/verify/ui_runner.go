package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verislang/veris/internal/pipeline"
	"github.com/verislang/veris/internal/ui"
)

// runVerifyFilesWithUI drives pipeline.VerifyFiles behind a Bubble Tea
// progress model: a goroutine runs the verification and closes the event
// channel on completion, the program renders until that close, and the
// outcome is handed back to the caller once the TUI quits.
func runVerifyFilesWithUI(ctx context.Context, title string, paths []string, opts pipeline.Options, jobs int) ([]*pipeline.Result, error) {
	events := make(chan pipeline.Event, 256)
	type outcome struct {
		results []*pipeline.Result
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	opts.Events = events
	go func() {
		results, err := pipeline.VerifyFiles(ctx, paths, opts, jobs)
		outcomeCh <- outcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.results, uiErr
	}
	return out.results, out.err
}
