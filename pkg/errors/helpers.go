package errors

import "errors"

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	if err == nil {
		return false
	}

	var validationErr *ValidationError
	return errors.As(err, &validationErr) || errors.Is(err, ErrInvalidInput)
}

// IsLinkOpen checks if an error indicates a link could not be opened.
func IsLinkOpen(err error) bool {
	if err == nil {
		return false
	}

	var linkErr *LinkOpenError
	return errors.As(err, &linkErr) || errors.Is(err, ErrLinkOpen)
}

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool {
	if err == nil {
		return false
	}

	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// As is a convenience re-export of errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Is is a convenience re-export of errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
