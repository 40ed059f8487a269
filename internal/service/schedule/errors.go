package schedule

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWeek           = errors.New("invalid week identifier")
	ErrInvalidCapacity       = errors.New("invalid capacity")
	ErrEmptyDaySet           = errors.New("schedule must contain at least one day")

	ErrScheduleNotFound = errors.New("delivery schedule not found")
	ErrRuleDayNotFound  = errors.New("delivery rule day not found")
)
