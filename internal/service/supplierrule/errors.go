package supplierrule

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRuleID         = errors.New("invalid rule id")
	ErrInvalidSupplierName   = errors.New("invalid supplier name")
	ErrInvalidDay            = errors.New("invalid weekday")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrInvalidEmail          = errors.New("invalid delivery email")

	ErrNoCapacityConfigured         = errors.New("no delivery capacity configured for this weekday yet")
	ErrAllocationExceedsDayCapacity = errors.New("allocated capacity exceeds configured day capacity")

	ErrRuleNotFound = errors.New("supplier rule not found")
	ErrConflict     = errors.New("supplier rule already exists for this weekday")
)
