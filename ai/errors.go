package ai

import "errors"

var (
	// ErrEmptyResponse is returned when the model returns no choices.
	ErrEmptyResponse = errors.New("model returned no content")

	// ErrUnknownProvider is returned for a provider name that has no implementation.
	ErrUnknownProvider = errors.New("unknown AI provider")
)
