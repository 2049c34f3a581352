package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner_NoTTYRunsAction(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithTitle("Creating components files..."))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_NoTTYLogsTitle(t *testing.T) {
	buf := captureLog(LogConfig{Timestamps: BoolPtr(false)})
	t.Cleanup(func() { SetupLogging(LogConfig{}) })

	err := RunWithSpinner(context.Background(), func() error { return nil },
		WithTitle("Creating components files..."))

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Creating components files...")
}

func TestRunWithSpinner_ReturnsActionError(t *testing.T) {
	want := errors.New("write failed")
	err := RunWithSpinner(context.Background(), func() error { return want })
	assert.ErrorIs(t, err, want)
}
