package oncall

import "errors"

var (
	ErrDayNotFound = errors.New("on-call day not found")
)
