package datefmt

import "errors"

var (
	// Arguments
	ErrInvalidArgumentType = errors.New("invalid argument type")
	ErrInvalidDate         = errors.New("invalid date")

	// Templates and named formatters
	ErrMissingTemplate  = errors.New("no template for current locale and no default template")
	ErrInvalidFormatter = errors.New("invalid named formatter")
	ErrUnknownToken     = errors.New("unknown token")

	// Configuration
	ErrLoadingEnvFile    = errors.New("failed to load .env file")
	ErrParsingConfig     = errors.New("failed to parse environment variables into config")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrInvalidLogLevel   = errors.New("invalid log level")
	ErrInvalidLogFormat  = errors.New("invalid log format")
	ErrLocaleUnavailable = errors.New("configured locale is unavailable")
)

const (
	msgFormatNotString = "argument `format` must be a string"
	msgDateType        = "argument `date` must be instance of time.Time or Unix timestamp or ISO date string"
)
