package main

// exprcheck tells, line by line, whether its input holds arithmetic
// expressions.

import (
	"errors"
	"fmt"
	"os"

	"github.com/ltungv/exprcheck/internal/check"
	"github.com/ltungv/exprcheck/internal/config"
)

// Exit statuses, from sysexits.h
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64
	exitNoInput = 66
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil && !isSourceError(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case isSourceError(err):
		return exitNoInput
	case errors.Is(err, errUsage), errors.Is(err, config.ErrInvalidValue):
		return exitUsage
	}
	return exitFailure
}

// isSourceError reports whether err only carries source errors, which have
// already been shown to the user.
func isSourceError(err error) bool {
	var srcErr *check.SourceError
	return errors.As(err, &srcErr)
}
