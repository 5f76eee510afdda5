// Package constants provides shared constants used throughout the modmap codebase.
// This includes timeouts, limits, file permissions, and other configuration values
// that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 10 * time.Minute

	// DescribeTimeout is the timeout for a single description request to a Gemini model
	DescribeTimeout = 2 * time.Minute

	// EnhanceTimeout is the timeout for running the full enhancement pipeline
	EnhanceTimeout = 5 * time.Minute

	// RefreshContextTimeout is the timeout for each automatic re-mapping run
	RefreshContextTimeout = 5 * time.Minute

	// DefaultRefreshInterval is the default interval between automatic re-mapping runs
	DefaultRefreshInterval = 15 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like API keys (rw-------)
	SecureFilePermissions = 0600
)

// Limit constants define various limits and capacities
const (
	// MaxNameLength is the maximum allowed length for a logical module name
	MaxNameLength = 256

	// MaxDescriptionLength is the maximum allowed length for generated descriptions
	MaxDescriptionLength = 4096

	// MaxReadmeWalkDepth is the maximum number of parent directories searched
	// for a package README before giving up
	MaxReadmeWalkDepth = 64

	// WriteBufferSize is the default buffer size for write operations
	WriteBufferSize = 4096

	// MaxProjectReflections is the maximum number of reflections loaded from a
	// single project document
	MaxProjectReflections = 1_000_000
)

// Default values
const (
	// DefaultReadmeName is the README basename attached to annotated packages
	DefaultReadmeName = "readme.md"

	// DefaultDescribeModel is the Gemini model used for module descriptions
	// when none is specified
	DefaultDescribeModel = "gemini-2.5-flash"

	// DefaultEnvironment is the default environment (development, staging, production)
	DefaultEnvironment = "production"
)

// Path constants
const (
	// DefaultConfigPath is the default path for configuration files
	DefaultConfigPath = "~/.modmap/config.yaml"

	// DefaultLogsPath is the default path for log files
	DefaultLogsPath = "~/.modmap/logs"
)

// Format constants
const (
	// TimeFormatISO8601 is the ISO 8601 time format
	TimeFormatISO8601 = time.RFC3339

	// TimeFormatHuman is a human-readable time format
	TimeFormatHuman = "Jan 2, 2006 at 3:04pm MST"

	// TimeFormatFilename is the format used in generated filenames
	TimeFormatFilename = "20060102-150405"
)

// Error messages
const (
	// ErrMsgReflectionNotFound is the standard error message for missing reflections
	ErrMsgReflectionNotFound = "reflection not found"

	// ErrMsgInvalidAPIKey is the standard error message for invalid API keys
	ErrMsgInvalidAPIKey = "invalid or missing API key"

	// ErrMsgTimeout is the standard error message for timeouts
	ErrMsgTimeout = "operation timed out"
)
