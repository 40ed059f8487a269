package notification

import "errors"

var (
	ErrMissingRequiredFields = errors.New("booking id and status are required")
	ErrUndefinedStatus       = errors.New("no handler for booking status")
)
