package main

import (
	"errors"
	"os"

	neurapress "github.com/tianyaxiang/neurapress-sub000"
	"github.com/tianyaxiang/neurapress-sub000/internal/config"
	"github.com/tianyaxiang/neurapress-sub000/internal/fileutil"
)

// Exit codes for the neurapress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, neurapress.ErrBrowserConnect) ||
		errors.Is(err, neurapress.ErrPageCreate) ||
		errors.Is(err, neurapress.ErrPageLoad) ||
		errors.Is(err, neurapress.ErrDiagramScript) ||
		errors.Is(err, neurapress.ErrDiagramRender) ||
		errors.Is(err, ErrRasterizerInit) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, neurapress.ErrTemplateNotFound) ||
		errors.Is(err, neurapress.ErrInvalidTemplate) ||
		errors.Is(err, neurapress.ErrInvalidAssetPath) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnknownCodeTheme) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, fileutil.ErrOutputDirectory) {
		return ExitIO
	}

	return ExitGeneral
}
