// Package main is the entry point for the mdview CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/mdview/internal/cli"
	"github.com/yaklabco/mdview/internal/logging"
	"github.com/yaklabco/mdview/pkg/config"
	"github.com/yaklabco/mdview/pkg/fsutil"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return exitCode(err)
	}

	return cli.ExitSuccess
}

// exitCode maps an execution error to its conventional exit code.
func exitCode(err error) int {
	switch {
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return cli.ExitIOError
	case errors.Is(err, config.ErrBadPattern),
		errors.Is(err, config.ErrBadValue):
		return cli.ExitConfigError
	default:
		return cli.ExitInternalError
	}
}
