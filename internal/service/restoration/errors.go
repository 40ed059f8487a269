package restoration

import "errors"

var (
	ErrInvalidToken    = errors.New("invalid reservation token")
	ErrNothingToReject = errors.New("reservation has no allocated capacity")
	ErrRuleNotFound    = errors.New("supplier rule not found")
)
