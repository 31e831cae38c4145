package nav

import "errors"

// Domain errors for navigation operations.
var (
	// ErrInvalidRegion rejects a commit whose viewport has no area
	// (non-positive or non-finite extents). The rejection happens
	// before any in-flight scan is disturbed.
	ErrInvalidRegion = errors.New("nav: invalid region (viewport has no area)")
)
