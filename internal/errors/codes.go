// Package errors provides structured error handling for swiftfs.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Filesystem errors
//   - 3XX: Index engine errors (transport and output parsing)
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryFilesystem indicates direct filesystem errors.
	CategoryFilesystem Category = "FILESYSTEM"
	// CategoryEngine indicates index engine transport and parse errors.
	CategoryEngine Category = "ENGINE"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  = "ERR_102_CONFIG_INVALID"

	// Filesystem errors (200-299)
	ErrCodeNotFound       = "ERR_201_NOT_FOUND"
	ErrCodeFilePermission = "ERR_202_FILE_PERMISSION"

	// Engine errors (300-399)
	ErrCodeEngineStart     = "ERR_301_ENGINE_START"
	ErrCodeEngineExit      = "ERR_302_ENGINE_EXIT"
	ErrCodeMalformedOutput = "ERR_303_MALFORMED_OUTPUT"

	// Validation errors (400-499)
	ErrCodeInvalidPath       = "ERR_401_INVALID_PATH"
	ErrCodeInvalidSearchMode = "ERR_402_INVALID_SEARCH_MODE"

	// Internal errors (500-599)
	ErrCodeInternal       = "ERR_501_INTERNAL"
	ErrCodeVerifyMismatch = "ERR_502_VERIFY_MISMATCH"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryFilesystem
	case '3':
		return CategoryEngine
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode derives severity from error code.
// Verification mismatches are contract violations and therefore fatal;
// everything else is a recoverable operation failure.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeVerifyMismatch:
		return SeverityFatal
	case ErrCodeEngineStart, ErrCodeEngineExit, ErrCodeMalformedOutput:
		// Engine failures degrade to the direct filesystem path.
		return SeverityWarning
	default:
		return SeverityError
	}
}
