package locale

import "errors"

var (
	// Lookup
	ErrLocaleNotFound   = errors.New("locale data not found")
	ErrInvalidCode      = errors.New("invalid locale code")
	ErrResolveCancelled = errors.New("locale resolution cancelled")

	// Data validation
	ErrInvalidData = errors.New("invalid locale data")

	// Parsing
	ErrFailedToParseYAML    = errors.New("failed to parse YAML locale content")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON locale content")
	ErrUnsupportedExtension = errors.New("unsupported locale file extension")

	// File operations
	ErrFailedToReadFile = errors.New("failed to read locale file")
)
