package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tstranslate/internal/batch"
	"tstranslate/internal/ui"
)

// runBatchWithUI drives batch.Run on a goroutine while a Bubble Tea program
// renders its event stream.
func runBatchWithUI(ctx context.Context, title string, paths []string, opts batch.Options) ([]batch.FileResult, error) {
	events := make(chan batch.Event, 256)
	type outcome struct {
		results []batch.FileResult
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = batch.ChannelSink{Ch: events}
		results, err := batch.Run(ctx, paths, optsCopy)
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
