package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		status string
		want   lipgloss.TerminalColor
	}{
		{StatusCreated, ColorGreen},
		{StatusPlanned, ColorYellow},
		{StatusFailed, ColorBoldRed},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusStyle(tt.status).GetForeground())
		})
	}
}

func TestStatusStyle_Unknown(t *testing.T) {
	assert.Equal(t, lipgloss.NoColor{}, StatusStyle("bogus").GetForeground())
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("src/components/button/Button.js", StatusCreated)

	assert.Contains(t, line, "f:")
	assert.Contains(t, line, "src/components/button/Button.js")
	assert.Contains(t, line, StatusCreated)
}

func TestFormatFileLine_LongPathKeepsGap(t *testing.T) {
	long := "src/components/some/very/deeply/nested/folder/button/Button.js"
	line := FormatFileLine(long, StatusFailed)
	assert.Contains(t, line, long+"  ")
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Success!")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Success!")
}
