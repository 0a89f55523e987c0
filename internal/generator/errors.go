package generator

import "errors"

// Sentinel errors for generation input validation
var (
	ErrInvalidProjectCount = errors.New("project count must be at least 1")
)
