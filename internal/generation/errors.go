package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when content synthesis fails for any general reason
	ErrGenerationFailed = errors.New("failed to synthesise content")
)
