package producttype

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid product type name")
	ErrInvalidCapacity       = errors.New("invalid capacity")

	ErrProductTypeNotFound = errors.New("product type not found")
	ErrConflict            = errors.New("product type already exists")
)
