package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"time"

	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/generator"
	"github.com/reactkit/crc/internal/output"
)

// ReportError prints err the way the user should see it and returns it as
// an already printed ExitError. Only the already-exists case gets its own
// message; everything else is shown as is. When result is not nil, every
// write outcome is listed after the error.
func ReportError(err error, result *generator.Result) error {
	var detail *oerrors.DetailError
	switch {
	case errors.Is(err, oerrors.ErrAlreadyExists) && errors.As(err, &detail):
		output.Error(detail.Message)
	default:
		output.Error(err.Error())
	}

	if result != nil {
		PrintOutcomes(result)
	}

	return &oerrors.ExitError{
		Err:     err,
		Code:    oerrors.ExitCodeFromError(err),
		Printed: true,
	}
}

// PrintOutcomes prints one status line per attempted write.
func PrintOutcomes(result *generator.Result) {
	for _, c := range result.Components {
		if failed := c.Failed(); len(failed) > 0 {
			output.Debug("component incomplete", "component", c.Name.Raw, "failed", len(failed))
		}
		for _, o := range c.Outcomes {
			status := output.StatusCreated
			if !o.Success() {
				status = output.StatusFailed
			}
			output.Println(output.FormatFileLine(filepath.ToSlash(o.Path), status))
		}
	}
}

// WriteResult prints the report of a successful run. A dry run lists the
// planned files; a real run shows them as a tree under rootName.
func WriteResult(w io.Writer, target, rootName string, result *generator.Result) {
	files := result.Files()
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	if result.DryRun {
		fmt.Fprintln(w, output.StyleNoun.Render("Would create React components at: "+target))
		for _, p := range paths {
			fmt.Fprintln(w, output.FormatFileLine(filepath.ToSlash(p), output.StatusPlanned))
		}
		return
	}

	descriptions := make(map[string]string, len(files))
	for p, kind := range files {
		descriptions[p] = kind.String()
	}

	fmt.Fprintln(w, output.StyleNoun.Render("Created new React components at: "+target))
	fmt.Fprint(w, output.RenderFileTree(rootName, descriptions))
	fmt.Fprintln(w, output.StyleDim.Render("✨  Finished in "+FormatElapsed(result.Elapsed)))
	fmt.Fprintln(w, output.FormatCheckmark("Success!"))
}

// FormatElapsed rounds d for display.
func FormatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}
