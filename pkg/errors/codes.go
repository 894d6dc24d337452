package errors

// Error codes for categorizing errors.
const (
	// CodeUnknown indicates an unknown error occurred.
	CodeUnknown = "UNKNOWN"

	// CodeValidation indicates input validation failed.
	CodeValidation = "VALIDATION_ERROR"

	// CodeLinkOpen indicates a link destination could not be opened.
	CodeLinkOpen = "LINK_OPEN_ERROR"

	// CodeConfig indicates a configuration error.
	CodeConfig = "CONFIG_ERROR"

	// CodeInternal indicates internal errors.
	CodeInternal = "INTERNAL"
)

// ErrorCategory represents a high-level error category.
type ErrorCategory string

const (
	// CategoryCaller indicates bad input from the embedding application.
	CategoryCaller ErrorCategory = "CALLER_ERROR"

	// CategoryEnvironment indicates a host-environment failure, like the
	// platform refusing to open a URL.
	CategoryEnvironment ErrorCategory = "ENVIRONMENT_ERROR"

	// CategoryInternal indicates a bug in this library.
	CategoryInternal ErrorCategory = "INTERNAL_ERROR"
)

// GetCategory returns the category for an error code.
func GetCategory(code string) ErrorCategory {
	switch code {
	case CodeValidation, CodeConfig:
		return CategoryCaller
	case CodeLinkOpen:
		return CategoryEnvironment
	default:
		return CategoryInternal
	}
}
