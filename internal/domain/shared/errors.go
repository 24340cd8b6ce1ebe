package shared

import "errors"

// Domain-specific errors
var (
	// Item errors
	ErrItemNotFound = errors.New("not found")

	// Validation errors
	ErrTitleRequired   = errors.New("title and type required")
	ErrTypeRequired    = errors.New("title and type required")
	ErrInvalidItemType = errors.New("type must be lost or found")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrRequestTooLarge = errors.New("request body too large")
)
