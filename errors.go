package runemark

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a theme config or community package failed
	// validation.
	ErrValidation = errors.New("validation error")

	// ErrDuplicateRune indicates a rune name is already registered.
	ErrDuplicateRune = errors.New("duplicate rune")
)
