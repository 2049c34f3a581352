package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/layout"
)

const usageHint = "Usage: crc [flags] <path> [name...]"

// Validate checks req against l before anything touches the filesystem.
func Validate(req Request, l layout.Layout) error {
	l = l.WithDefaults()
	if err := l.Validate(); err != nil {
		return oerrors.NewValidationError(err.Error(), "", "layout", "Check the layout section of .crc.yaml.")
	}

	if len(req.Names) == 0 {
		return oerrors.NewValidationError("missing component name", "", "", usageHint)
	}
	if req.BasePath == "" {
		return oerrors.NewValidationError("base path is not set", "", "", "")
	}
	if filepath.IsAbs(req.Names[0]) {
		return oerrors.NewValidationError(
			fmt.Sprintf("path %q must be relative", req.Names[0]),
			req.Names[0], "", "Paths are resolved against the working directory.",
		)
	}

	for _, arg := range req.Names {
		name := layout.ResolveComponentName(arg)
		switch strings.TrimSpace(name.Raw) {
		case "", ".", "..":
			return oerrors.NewValidationError(
				fmt.Sprintf("%q does not name a component", arg), arg, "", usageHint,
			)
		}
	}

	if req.Flags.CreateIndex && (req.Flags.WithContainer || req.Flags.Storybook) {
		return oerrors.NewValidationError(
			"--createindex cannot be combined with --withcontainer or --storybook",
			"", "", "Run crc once with --createindex and once for the components.",
		)
	}

	parent := layout.ResolveParentFolder(req.Names[0])

	if req.Flags.WithContainer {
		if _, err := l.ContainerDir(parent); err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("cannot place containers for %s", req.Names[0]),
				req.Names[0], "layout.componentsDir",
				fmt.Sprintf("--withcontainer needs a %q directory in the path.", l.ComponentsDir),
			)
		}
	}

	seen := make(map[string]string, len(req.Names))
	for _, arg := range req.Names {
		dir := filepath.Join(parent, layout.ResolveComponentName(arg).Raw)
		if first, ok := seen[dir]; ok {
			return oerrors.NewConflictError(first, arg, filepath.Join(req.BasePath, dir))
		}
		seen[dir] = arg
	}

	return nil
}
