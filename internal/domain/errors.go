package domain

import "errors"

var (
	// ErrInvalidInput marks a collaborator error as malformed-input-class:
	// the collaborator rejected the arguments it was called with, rather
	// than failing operationally. Adapters wrap it so the orchestrator can
	// match with errors.Is instead of inspecting concrete error types.
	ErrInvalidInput = errors.New("invalid input")
)
