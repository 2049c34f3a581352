package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner.
// Returns the action's error if any. Without a TTY the title is logged once
// and the action runs directly.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if !IsTTY() {
		Info(cfg.title)
		return action()
	}

	var actionErr error
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		actionErr = action()
	}()

	spinnerErr := spinner.New().Title(cfg.title).Action(func() {
		<-finished
	}).Run()

	// The action always runs to completion; there is no cancellation.
	<-finished
	if actionErr == nil && spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return actionErr
}
