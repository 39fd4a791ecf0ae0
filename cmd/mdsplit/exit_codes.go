package main

import (
	"errors"
	"os"

	mdsplit "github.com/alnah/go-mdsplit"
	"github.com/alnah/go-mdsplit/internal/assets"
	"github.com/alnah/go-mdsplit/internal/config"
)

// Exit codes for the mdsplit CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
const (
	ExitSuccess = 0 // All published pages written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, mdsplit.ErrOutputDir) ||
		errors.Is(err, mdsplit.ErrWritePage) ||
		errors.Is(err, mdsplit.ErrWriteCSS) ||
		errors.Is(err, mdsplit.ErrCopyImages) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, mdsplit.ErrEmptyDocument) ||
		errors.Is(err, mdsplit.ErrInvalidSplitLevel) ||
		errors.Is(err, mdsplit.ErrImagesDirMissing) ||
		errors.Is(err, mdsplit.ErrNoDefaultCSS) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
