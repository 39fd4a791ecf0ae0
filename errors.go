package mdsplit

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument = errors.New("markdown content cannot be empty")
	ErrRender        = errors.New("markdown rendering failed")

	// Build configuration validation errors.
	ErrInvalidSplitLevel = errors.New("invalid split level")

	// Site writer errors.
	ErrOutputDir        = errors.New("cannot create output directory")
	ErrImagesDirMissing = errors.New("images subdirectory not found")
	ErrWritePage        = errors.New("failed to write page")
	ErrWriteCSS         = errors.New("failed to write stylesheet")
	ErrCopyImages       = errors.New("failed to copy images")
	ErrNoDefaultCSS     = errors.New("default stylesheet content is required")
)
