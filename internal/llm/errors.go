package llm

import "errors"

var (
	// ErrUnavailable indicates the model endpoint is unreachable.
	ErrUnavailable = errors.New("llm endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrMissingAPIKey indicates no API key is configured for an endpoint
	// that requires one.
	ErrMissingAPIKey = errors.New("llm api key not set")
)
