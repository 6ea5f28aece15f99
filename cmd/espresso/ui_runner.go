package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"espresso/internal/driver"
	"espresso/internal/ui"
)

type buildOutcome struct {
	results []driver.FileResult
	err     error
}

// runBuildWithUI runs a directory build behind an interactive progress
// display. The build itself runs in a goroutine; the UI consumes its
// progress events and quits when the event channel closes.
func runBuildWithUI(ctx context.Context, title string, files []string, dir string, opts driver.DirOptions) ([]driver.FileResult, error) {
	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = func(ev driver.ProgressEvent) { events <- ev }
		results, err := driver.CompileDir(ctx, dir, optsCopy)
		outcomeCh <- buildOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
