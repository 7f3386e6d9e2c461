package llm

import "errors"

var (
	// ErrGeneratorUnavailable indicates the model server is unreachable.
	ErrGeneratorUnavailable = errors.New("llm server unavailable")

	// ErrDisabled indicates the generator is switched off in configuration.
	ErrDisabled = errors.New("llm generator disabled")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all attempts failed for a reason other
	// than timeout or connectivity.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
