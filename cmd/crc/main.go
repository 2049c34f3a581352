// Package main is the entry point for the crc CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/reactkit/crc/internal/cmd"
	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/output"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cmd.NewRootCmd().Execute()
	if err == nil {
		return oerrors.ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Printed {
		fmt.Fprintln(os.Stderr, err)
	}
	code := oerrors.ExitCodeFromError(err)
	output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
	return code
}
